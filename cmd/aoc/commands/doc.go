// Package commands implements the aoc CLI: fetch and inspect cached puzzle
// inputs, or serve them to MCP clients.
package commands
