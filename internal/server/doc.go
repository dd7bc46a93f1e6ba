// Package server provides the HTTP server for the bulletin board pages.
//
// This package is internal to bulletinweb and handles all HTTP concerns:
//
//   - Page serving: "/" renders the "index" template, "/login" renders "login"
//   - Static assets: browser scripts under "/static/"
//   - Middleware: request IDs, access logging, panic recovery, security headers
//
// Every page request loads the Firebase client configuration from a
// [clientconfig.Source]. When the configuration is incomplete the page is
// answered with 500 and the error message as plain text.
//
// The server supports graceful shutdown via context cancellation.
//
// Users of the bulletinweb library should not need to interact with this
// package directly. The server is started by [bulletinweb.BulletinWeb.Start].
package server
