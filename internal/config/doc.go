// Package config defines the format-agnostic description of a run: which
// maze files to solve and where to write each result, along with the Loader
// interface that turns a settings file into that description.
//
// Concrete loaders, such as the HCL one, live in their own packages.
package config
