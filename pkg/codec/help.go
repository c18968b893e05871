package codec

// FormatHelp is the markdown reference for the machine document format,
// shown by the CLI and exposed as an MCP resource.
const FormatHelp = `# Machine Document Format

A machine is a JSON (or YAML) document with the following fields:

- **states**: list of state names
- **alphabet**: input symbols allowed in input strings
- **tape_alphabet**: symbols that may appear on the tape (must include the blank)
- **initial_state**: the state the machine starts in
- **accept_states**: entering one of these halts with ACCEPT
- **reject_states**: entering one of these halts with REJECT
- **blank_symbol**: optional, defaults to ` + "`_`" + `
- **transitions**: map from ` + "`\"state,symbol\"`" + ` to ` + "`[next_state, write_symbol, direction]`" + `

Directions are ` + "`L`" + ` (left) or ` + "`R`" + ` (right). A missing transition
halts the machine with REJECT.

## Example

` + "```json" + `
{
    "states": ["q0", "q1", "accept", "reject"],
    "alphabet": ["0", "1"],
    "tape_alphabet": ["0", "1", "_"],
    "initial_state": "q0",
    "accept_states": ["accept"],
    "reject_states": ["reject"],
    "transitions": {
        "q0,0": ["q0", "0", "R"],
        "q0,1": ["q1", "1", "R"],
        "q0,_": ["accept", "_", "R"],
        "q1,0": ["q1", "0", "R"],
        "q1,1": ["q0", "1", "R"],
        "q1,_": ["reject", "_", "R"]
    }
}
` + "```" + `

Run it with ` + "`spindle run machine.json --input 1011`" + `.
`
