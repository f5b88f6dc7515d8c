package core

import "keybridge/protocol"

// InitKeyCommands registers the strike and echo opcodes
func InitKeyCommands(d *Dispatcher) {
	// Both cases classify as strike; the case itself selects the mode
	d.Register(protocol.OpcodeStrike, "strike", handleStrike)
	d.Register(protocol.OpcodeStrikeSeq, "strike_sequence", handleStrike)

	d.Register(protocol.OpcodeEcho, "echo", handleEcho)
}

// handleStrike decodes the key and modifier fields and runs the strike
func handleStrike(d *Dispatcher, opcode byte, line []byte) {
	if protocol.FoldOpcode(opcode) != protocol.OpcodeStrike {
		return
	}

	key := protocol.DecodeHexByte(
		protocol.At(line, protocol.PositionKey),
		protocol.At(line, protocol.PositionKey+1),
	)
	modifiers := protocol.DecodeHexByte(
		protocol.At(line, protocol.PositionModifiers),
		protocol.At(line, protocol.PositionModifiers+1),
	)

	d.seq.Strike(key, modifiers, opcode == protocol.OpcodeStrikeSeq)
}

// handleEcho types the single character following the opcode
func handleEcho(d *Dispatcher, _ byte, line []byte) {
	if len(line) <= protocol.PositionEcho {
		return
	}
	d.seq.WriteText(string(line[protocol.PositionEcho : protocol.PositionEcho+1]))
}
