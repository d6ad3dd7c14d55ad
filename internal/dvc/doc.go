// Package dvc builds the dvc invocations dataver issues and interprets their output.
//
// Classification of `dvc status` output lives here so the detection logic can
// be tested without a dvc installation.
package dvc
