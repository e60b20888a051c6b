// Package config loads the optional construct.yaml project file.
//
// Everything in it has a flag equivalent; the file exists so a project can
// pin its package patterns and output conventions next to the code instead
// of in a Makefile. Flags win over file values, file values win over
// defaults.
package config
