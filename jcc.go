// Completion: 100% - Conditional jump templates complete
package asm2c

// conditionalJump describes one conditional-jump rendering: a fixed boolean
// expression over the condition-code flags, plus an optional human-readable
// condition name. Variants with a name append `; // <name>` and finish the
// line themselves; the nameless variants leave the trailing semicolon to the
// shared step in TranslateInstruction. Only the conditions that follow a
// compare carry a name; plain flag tests read well enough on their own.
type conditionalJump struct {
	predicate string
	comment   string
}

var conditionalJumps = map[Mnemonic]conditionalJump{
	MnemonicJb:    {"carry_flag", "if below"},
	MnemonicJbe:   {"carry_flag || zero_flag", "if below or equal"},
	MnemonicJcxz:  {"(u16)c == 0", ""},
	MnemonicJecxz: {"(u32)c == 0", ""},
	MnemonicJl:    {"sign_flag != overflow_flag", "if less"},
	MnemonicJle:   {"zero_flag || sign_flag != overflow_flag", "if less or equal"},
	MnemonicJnb:   {"!carry_flag", "if not below"},
	MnemonicJnbe:  {"!carry_flag && !zero_flag", "if not below or equal"},
	MnemonicJnl:   {"sign_flag && overflow_flag", "if not less"},
	MnemonicJnle:  {"!zero_flag && sign_flag == overflow_flag", "if not less or equal"},
	MnemonicJno:   {"!overflow_flag", ""},
	MnemonicJnp:   {"!parity_flag", ""},
	MnemonicJns:   {"!sign_flag", ""},
	MnemonicJnz:   {"!zero_flag", "if not zero / not equal"},
	MnemonicJo:    {"overflow_flag", ""},
	MnemonicJp:    {"parity_flag", ""},
	MnemonicJs:    {"sign_flag", ""},
	MnemonicJz:    {"zero_flag", "if zero / equal"},
}

// writeConditionalJump renders `if (<predicate>) goto <target>`. terminated
// reports that the comment form was used and the line is already complete.
func writeConditionalJump(w *Writer, jump *conditionalJump, target *Operand, virtualAddress uint64) (ok, terminated bool) {
	if !w.WriteRaw("if (") || !w.WriteRaw(jump.predicate) || !w.WriteRaw(") goto ") {
		return false, false
	}
	if !w.WriteOperand(target, virtualAddress) {
		return false, false
	}
	if jump.comment == "" {
		return true, false
	}
	if !w.WriteRaw("; // ") || !w.WriteRaw(jump.comment) {
		return false, true
	}
	return true, true
}
