// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle (load each maze, search it,
// trace the path, write the annotated result, report the counters),
// decoupled from any specific entrypoint like a CLI.
package app
