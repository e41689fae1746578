// Package commands defines the playfair CLI, which runs the cipher locally
// without the HTTP server.
//
// Commands
//
//   - encrypt   Encrypt text with the key square built from --key
//   - decrypt   Decrypt text with the key square built from --key
//   - square    Print the 5x5 key square for --key
//
// Text is taken from the arguments, joined with spaces, or from stdin when
// no arguments are given.
package commands
