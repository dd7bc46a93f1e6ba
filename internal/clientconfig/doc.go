// Package clientconfig builds and serves the Firebase client configuration
// handed to the browser.
//
// This package is internal to bulletinweb and owns the only domain entity of
// the server: the six-field [Record] consumed by the client-side Firebase SDK.
//
// The main components are:
//
//   - [Record]: Validated bundle of the six configuration values
//   - [Build]: Assembles a Record from an environment lookup, failing with a
//     [ConfigurationError] when any value is missing
//   - [Source]: Interface handed to request handlers
//   - [EnvSource]: Rebuilds the Record on every Load
//   - [StaticSource]: Builds once and returns the same result afterwards
//
// A Record is either complete or not returned at all. Partial records never
// leave [Build].
package clientconfig
