// Package output renders command results as text, JSON or YAML.
package output
