// Package exercise checks programs against Starlark exercise files.
//
// An exercise file is a Starlark program that defines:
//
//	name = "Add two numbers"       # optional, defaults to the file name
//	max_steps = 1000               # optional step budget per case
//	cases = [
//	    {"input": [1, 2], "output": [3]},
//	    {"input": [5, -5]},        # output computed by expect()
//	]
//
//	def expect(inputs):            # optional
//	    return [inputs[0] + inputs[1]]
//
// MEMORY_SIZE, DATA_MIN and DATA_MAX are predeclared.
package exercise

import (
	"fmt"
	"log"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/lmc/asm"
	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/emulator"
	"github.com/ezrec/lmc/io"
)

// DEFAULT_MAX_STEPS is the step budget of a case when the file sets none.
const DEFAULT_MAX_STEPS = 10000

var predeclared = starlark.StringDict{
	"MEMORY_SIZE": starlark.MakeInt(cpu.MEMORY_SIZE),
	"DATA_MIN":    starlark.MakeInt(cpu.DATA_MIN),
	"DATA_MAX":    starlark.MakeInt(cpu.DATA_MAX),
}

// Case is a single input tape and its expected output.
type Case struct {
	Name   string
	Input  []int16
	Output []string
}

// Exercise is a set of cases a program must pass.
type Exercise struct {
	Verbose  bool // If set, logs each case as it is checked.
	Name     string
	MaxSteps int
	Cases    []Case
}

// Result is the outcome of running one case.
type Result struct {
	Case   *Case
	Output []string // Output produced by the program.
	Steps  int      // Steps executed.
	Err    error    // Runtime error, if any.
}

// Passed returns true if the program ran without error and produced the
// expected output.
func (res *Result) Passed() bool {
	return res.Err == nil && slices.Equal(res.Output, res.Case.Output)
}

// String summarizes the result on one line.
func (res *Result) String() string {
	switch {
	case res.Err != nil:
		return f("%v: FAIL: %v", res.Case.Name, res.Err)
	case !res.Passed():
		return f("%v: FAIL: expected [%v], received [%v]", res.Case.Name,
			strings.Join(res.Case.Output, " "), strings.Join(res.Output, " "))
	}

	return f("%v: ok (%v steps)", res.Case.Name, strconv.Itoa(res.Steps))
}

// toValues converts a Starlark list of integers into input values.
func toValues(value starlark.Value) (values []int16, err error) {
	iter := starlark.Iterate(value)
	if iter == nil {
		err = ErrNotList
		return
	}
	defer iter.Done()

	values = []int16{}
	var item starlark.Value
	for iter.Next(&item) {
		var n int
		n, err = starlark.AsInt32(item)
		if err != nil {
			return
		}
		if n < cpu.DATA_MIN || n > cpu.DATA_MAX {
			err = fmt.Errorf("%w: %d", ErrValueRange, n)
			return
		}
		values = append(values, int16(n))
	}

	return
}

// toOutput converts a Starlark list of integers or strings into output text.
func toOutput(value starlark.Value) (output []string, err error) {
	iter := starlark.Iterate(value)
	if iter == nil {
		err = ErrNotList
		return
	}
	defer iter.Done()

	output = []string{}
	var item starlark.Value
	for iter.Next(&item) {
		if text, ok := starlark.AsString(item); ok {
			output = append(output, text)
			continue
		}
		var n int
		n, err = starlark.AsInt32(item)
		if err != nil {
			return
		}
		output = append(output, strconv.Itoa(n))
	}

	return
}

// Load parses an exercise file. If src is nil, the file is read from
// filename; otherwise src may be a string, []byte or io.Reader.
func Load(filename string, src any) (ex *Exercise, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}

	globals, err := starlark.ExecFileOptions(&syntax.FileOptions{}, thread, filename, src, predeclared)
	if err != nil {
		return
	}

	fail := func(field string, err error) error {
		return ErrExercise{Filename: filename, Field: field, Err: err}
	}

	ex = &Exercise{
		Name:     strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)),
		MaxSteps: DEFAULT_MAX_STEPS,
	}

	if value, ok := globals["name"]; ok {
		text, ok := starlark.AsString(value)
		if !ok {
			ex, err = nil, fail("name", fmt.Errorf("expected a string, got %v", value.Type()))
			return
		}
		ex.Name = text
	}

	if value, ok := globals["max_steps"]; ok {
		var n int
		n, err = starlark.AsInt32(value)
		if err == nil && n <= 0 {
			err = ErrMaxSteps
		}
		if err != nil {
			ex, err = nil, fail("max_steps", err)
			return
		}
		ex.MaxSteps = n
	}

	var expect starlark.Callable
	if value, ok := globals["expect"]; ok {
		expect, ok = value.(starlark.Callable)
		if !ok {
			ex, err = nil, fail("expect", ErrNotCallable)
			return
		}
	}

	cases, ok := globals["cases"]
	if !ok {
		ex, err = nil, fail("cases", ErrNoCases)
		return
	}

	iter := starlark.Iterate(cases)
	if iter == nil {
		ex, err = nil, fail("cases", ErrNotList)
		return
	}
	defer iter.Done()

	var item starlark.Value
	for n := 0; iter.Next(&item); n++ {
		field := fmt.Sprintf("cases[%d]", n)
		var c *Case
		c, err = ex.loadCase(thread, item, expect)
		if err != nil {
			ex, err = nil, fail(field, err)
			return
		}
		c.Name = fmt.Sprintf("%v #%d", ex.Name, n+1)
		ex.Cases = append(ex.Cases, *c)
	}

	if len(ex.Cases) == 0 {
		ex, err = nil, fail("cases", ErrNoCases)
		return
	}

	return
}

// loadCase converts a case dict.
func (ex *Exercise) loadCase(thread *starlark.Thread, item starlark.Value, expect starlark.Callable) (c *Case, err error) {
	dict, ok := item.(*starlark.Dict)
	if !ok {
		err = ErrNotDict
		return
	}

	c = &Case{Input: []int16{}}

	value, found, err := dict.Get(starlark.String("input"))
	if err != nil {
		return
	}
	if found {
		c.Input, err = toValues(value)
		if err != nil {
			return
		}
	}

	value, found, err = dict.Get(starlark.String("output"))
	if err != nil {
		return
	}
	if !found {
		if expect == nil {
			err = ErrNoOutput
			return
		}
		inputs := make([]starlark.Value, 0, len(c.Input))
		for _, v := range c.Input {
			inputs = append(inputs, starlark.MakeInt(int(v)))
		}
		value, err = starlark.Call(thread, expect, starlark.Tuple{starlark.NewList(inputs)}, nil)
		if err != nil {
			return
		}
	}

	c.Output, err = toOutput(value)
	return
}

// Check runs every case against an image. The program is used for line
// numbers in runtime errors, and may be nil.
func (ex *Exercise) Check(image cpu.Image, prog *asm.Program) (results []Result) {
	for n := range ex.Cases {
		c := &ex.Cases[n]

		emu := emulator.NewEmulator()
		emu.Load(image, prog)

		rom := &io.Rom{Data: c.Input}
		steps, err := emu.Run(rom, ex.MaxSteps)

		result := Result{
			Case:   c,
			Output: rom.Output,
			Steps:  steps,
			Err:    err,
		}
		if result.Output == nil {
			result.Output = []string{}
		}
		if ex.Verbose {
			log.Print(result.String())
		}

		results = append(results, result)
	}

	return
}
