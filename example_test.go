package fsmx_test

import (
	"errors"
	"fmt"

	"github.com/comalice/fsmx"
)

func Example() {
	cfg, err := fsmx.ParseConfig([]byte(`
initial: normal
states:
  normal:
    transitions:
      study: busy
  busy:
    transitions:
      get_tired: sleeping
      get_hungry: hungry
  hungry:
    transitions:
      eat: normal
  sleeping:
    transitions:
      get_hungry: hungry
      get_up: normal
`))
	if err != nil {
		panic(err)
	}
	m := fsmx.MustNew(cfg)

	_ = m.Trigger("study")
	_ = m.ChangeState("sleeping")
	fmt.Println(m.State())

	fmt.Println(m.Undo(), m.State())
	fmt.Println(m.Undo(), m.State())
	fmt.Println(m.Undo(), m.State())
	fmt.Println(m.Redo(), m.State())
	fmt.Println(m.Redo(), m.State())
	fmt.Println(m.Redo(), m.State())

	fmt.Println(m.States())
	fmt.Println(m.StatesWithEvent("get_hungry"))

	// Output:
	// sleeping
	// true busy
	// true normal
	// false normal
	// true busy
	// true sleeping
	// false sleeping
	// [normal busy hungry sleeping]
	// [busy sleeping]
}

func ExampleMachine_Trigger() {
	m, _ := fsmx.NewBuilder("idle").
		State("idle").On("start", "running").
		State("running").On("stop", "idle").
		Build()

	if err := m.Trigger("stop"); errors.Is(err, fsmx.ErrNoSuchTransition) {
		fmt.Println(err)
	}
	if err := m.ChangeState("paused"); errors.Is(err, fsmx.ErrUnknownState) {
		fmt.Println(err)
	}
	fmt.Println(m.State())

	// Output:
	// no transition from state 'idle' for event 'stop'
	// unknown state 'paused'
	// idle
}
