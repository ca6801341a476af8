package probe

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleReporter_Lines(t *testing.T) {
	var out bytes.Buffer
	r := NewConsoleReporter(&out, ConsoleConfig{NoColor: true})

	r.Connecting()
	r.Sending(17)
	r.SendCompleted()
	r.Waiting()
	r.Received(5, 12)
	r.Passed()
	r.Failed(3, 17)
	r.Error(errors.New("connection refused"))

	assert.Equal(t, ""+
		"[Host] Connecting...\n"+
		"[Host] Sending 17 bytes\n"+
		"[Host] Send completed\n"+
		"[Host] Waiting for response...\n"+
		"[Host] Received 5 bytes (total 12)\n"+
		"[Host] Test PASSED!\n"+
		"[Host] Test FAILED! Received 3/17 bytes\n"+
		"[Host] Error: connection refused\n", out.String())
}

func TestVerdict_String(t *testing.T) {
	assert.Equal(t, "pass", VerdictPass.String())
	assert.Equal(t, "fail", VerdictFail.String())
	assert.Equal(t, "error", VerdictError.String())
}
