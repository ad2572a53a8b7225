// Package commands defines the ledgerctl operator CLI.
//
// Commands
//
//   - catalog    Print checkup categories or sampling packages
//   - prefill    Show the fields a profile seeds into a wizard
//   - requests   List a user's requests from the configured store
//   - token      Issue a Bearer token for a user id
//
// The CLI reads the same environment as the API server, so requests inspects
// whichever store backend STORE_BACKEND selects.
package commands
