// Package remote defines the operations commands send to a content server.
//
// Commands depend on the Client interface only. DryRun is the shipped
// implementation: it validates each request, then prints the step it would
// send instead of contacting a server.
package remote
