// Package webapp resolves web application names given on the command line.
// A name is either a project scope ("preview", "staging", "webedit", "live")
// or a global web app written as "global(<id>)". The plain name of the global
// scope is never accepted.
package webapp
