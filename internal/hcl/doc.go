// Package hcl provides the HCL implementation of config.Loader. It parses
// settings files, evaluates the path expressions inside `maze` blocks, and
// translates them into the format-agnostic config.Model.
//
// A settings file looks like this:
//
//	workdir = "/data/day16"
//
//	maze "example" {
//	  input  = "${workdir}/example.txt"
//	  output = format("%s/%s.out.txt", workdir, name)
//	}
//
// `workdir` defaults to the directory of the file and relative paths are
// resolved against it. `output` defaults to output.txt next to the input.
package hcl
