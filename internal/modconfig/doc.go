// Package modconfig handles parsing and validation of module configuration
// files consumed by `module configure`.
//
// A configuration file is a YAML or JSON array of module entries. Each entry
// names a module and lists the web components, project components and
// services to configure. Files are validated against an embedded JSON schema
// before decoding, and every webAppName is resolved through the webapp
// grammar so that a bad scope is reported before anything reaches the server.
package modconfig
