package pwa

import (
	"encoding/json"
	"sync"
	"time"
)

// Client event names for the header and connectivity machines.
const (
	EventScrollBelow = "below"
	EventScrollAbove = "above"
	EventOnline      = "online"
	EventOffline     = "offline"
)

// ClientTable is the transition table the page script follows. Every entry
// is produced by running the machines in this package, so browser events
// move through the same states the server evaluates.
type ClientTable struct {
	ScrollThreshold int   `json:"scrollThreshold"`
	PromptDelayMS   int64 `json:"promptDelayMs"`
	// Header, Prompt and Connectivity map state, then event, to next state.
	Header       map[string]map[string]string `json:"header"`
	Prompt       map[string]map[string]string `json:"prompt"`
	Connectivity map[string]map[string]string `json:"connectivity"`
	// Visible lists the prompt states that show the banner.
	Visible []string `json:"visible"`
}

// BuildClientTable enumerates every transition of the header, install prompt
// and connectivity machines.
func BuildClientTable() ClientTable {
	table := ClientTable{
		ScrollThreshold: ScrollThreshold,
		PromptDelayMS:   PromptDelay.Milliseconds(),
		Header:          map[string]map[string]string{},
		Prompt:          map[string]map[string]string{},
		Connectivity:    map[string]map[string]string{},
	}

	for _, state := range []HeaderState{HeaderTop, HeaderScrolled} {
		below := HeaderStyle{state: state}
		below.Scroll(0)
		above := HeaderStyle{state: state}
		above.Scroll(ScrollThreshold + 1)
		table.Header[state.String()] = map[string]string{
			EventScrollBelow: below.State().String(),
			EventScrollAbove: above.State().String(),
		}
	}

	for state := PromptHidden; state <= PromptInstalled; state++ {
		next := map[string]string{}
		for event := EventInstallable; event <= EventInstalled; event++ {
			p := &InstallPrompt{state: state}
			if p.Handle(event, time.Time{}) {
				next[event.String()] = p.State().String()
			}
		}
		table.Prompt[state.String()] = next
		if (&InstallPrompt{state: state}).Visible() {
			table.Visible = append(table.Visible, state.String())
		}
	}

	for _, online := range []bool{true, false} {
		from := NewConnectivity(online)
		next := map[string]string{}
		up := NewConnectivity(online)
		up.Online()
		next[EventOnline] = up.Status()
		down := NewConnectivity(online)
		down.Offline()
		next[EventOffline] = down.Status()
		table.Connectivity[from.Status()] = next
	}
	return table
}

var clientTableJSON = sync.OnceValue(func() string {
	raw, err := json.Marshal(BuildClientTable())
	if err != nil {
		panic(err)
	}
	return string(raw)
})

// ClientTableJSON returns the serialized transition table.
func ClientTableJSON() string {
	return clientTableJSON()
}
