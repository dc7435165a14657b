// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const (
	COMMENT_MARKER = "#"     // Starts a comment that runs to end of line.
	LABEL_MARKER   = "."     // Starts a label name.
	LINE_MAX       = 1 << 20 // Longest accepted source line, in bytes.
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":       "0",
	"OPERAND_SIZE": fmt.Sprintf("%d", OPERAND_SIZE),
	"MEMORY_SIZE":  fmt.Sprintf("%d", MEMORY_SIZE),
}

var parenExpr = regexp.MustCompile(`\$\([^\$]*\)`)

// patchSite is an operand waiting for its label to be resolved.
type patchSite struct {
	Label  string // Label name, including the marker.
	Offset int    // Offset of the operand placeholder.
	Index  int    // Index of the listing entry.
}

// Assembler is a two pass assembler for the stack machine.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to byte offsets.
	Equate    map[string]string // Names visible to $(...) expressions.

	code  []byte      // Emitted bytes.
	patch []patchSite // Pending label references.
}

// Predefine defines a new name, or redefines an existing one, for $(...) expressions.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// Assemble translates source text into bytecode.
func Assemble(source string) (code []byte, err error) {
	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(source))
	if err != nil {
		return
	}

	code = prog.Code
	return
}

// valueOf returns the value of an integer literal.
func (asm *Assembler) valueOf(word string) (value int32, err error) {
	v64, err := strconv.ParseInt(word, 10, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int32(v64)
	return
}

// checkLabel validates a label name.
func checkLabel(word string) (err error) {
	if len(word) <= len(LABEL_MARKER) || !strings.HasPrefix(word, LABEL_MARKER) {
		err = ErrLabelInvalid
	}
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < math.MinInt32 || st_int64 > math.MaxInt32 {
		err = ErrParseExpression(expr)
		return
	}
	value = int32(st_int64)
	return
}

// parseLine expands a comment free line into words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%d", lineno)

	// Do $() evaluations
	line = parenExpr.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	return
}

// Parse parses an input stream into a Program.
//
// The first pass emits bytes, writing a zero placeholder for each label
// reference. The second pass patches each placeholder with its label's offset.
// No Program is returned if any line fails to assemble.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, LINE_MAX)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			prog = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	if asm.Label == nil {
		asm.Label = make(map[string]int, 16)
	}
	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	asm.code = asm.code[:0]
	asm.patch = asm.patch[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line, _, _ = strings.Cut(text, COMMENT_MARKER)
		line = strings.TrimSpace(line)

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		// The unread line follows the last one scanned.
		lineno += 1
		line = ""
		return
	}

	// Final linking of labels.
	for _, site := range asm.patch {
		op := &asm.Opcode[site.Index]
		ip, ok := asm.Label[site.Label]
		if !ok {
			lineno = op.LineNo
			line = strings.Join(op.Words, " ")
			err = ErrLabelMissing(site.Label)
			return
		}
		putOperand(asm.code, site.Offset, int32(ip))
		op.Operand = int32(ip)
	}

	prog = &Program{
		Code:    slices.Clone(asm.code),
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	ip := len(asm.code)

	// .label
	if strings.HasPrefix(words[0], LABEL_MARKER) {
		if len(words) != 1 {
			err = ErrLabelSyntax
			return
		}
		label := words[0]
		err = checkLabel(label)
		if err != nil {
			return
		}
		if asm.Verbose {
			prior, ok := asm.Label[label]
			if ok {
				log.Printf("%v: label %v moved from %d to %d", lineno, label, prior, ip)
			} else {
				log.Printf("%v: label %v at %d", lineno, label, ip)
			}
		}
		asm.Label[label] = ip
		return
	}

	op, ok := LookupOp(words[0])
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	args := words[1:]
	switch {
	case len(args) > 1:
		err = ErrOpcodeExtraArgs
		return
	case !op.HasOperand() && len(args) != 0:
		err = ErrOpcodeExtraArgs
		return
	case op.HasOperand() && len(args) == 0:
		err = ErrOpcodeValueMissing
		return
	}

	opcode := Opcode{
		LineNo:      lineno,
		Ip:          ip,
		Words:       words,
		Instruction: Instruction{Op: op},
	}

	if op.HasOperand() {
		word := args[0]
		if strings.HasPrefix(word, LABEL_MARKER) {
			err = checkLabel(word)
			if err != nil {
				return
			}
			opcode.LinkLabel = word
			asm.patch = append(asm.patch, patchSite{
				Label:  word,
				Offset: ip + 1,
				Index:  len(asm.Opcode),
			})
		} else {
			opcode.Operand, err = asm.valueOf(word)
			if err != nil {
				return
			}
		}
	}

	asm.code = opcode.Append(asm.code)
	asm.Opcode = append(asm.Opcode, opcode)

	return
}
