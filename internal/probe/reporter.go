package probe

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

//go:generate mockgen -destination=../mocks/mock_reporter.go -package=mocks github.com/zhukov-alex/echoprobe/internal/probe Reporter

// Reporter receives the human-readable progress of a probe run.
type Reporter interface {
	Connecting()
	Sending(n int)
	SendCompleted()
	Waiting()
	Received(n, total int)
	Passed()
	Failed(received, expected int)
	Error(err error)
}

const linePrefix = "[Host] "

// ConsoleReporter writes progress lines to out, coloring the verdict.
type ConsoleReporter struct {
	out  io.Writer
	pass *color.Color
	fail *color.Color
}

func NewConsoleReporter(out io.Writer, cfg ConsoleConfig) *ConsoleReporter {
	pass := color.New(color.FgGreen, color.Bold)
	fail := color.New(color.FgRed, color.Bold)
	if cfg.NoColor {
		pass.DisableColor()
		fail.DisableColor()
	}
	return &ConsoleReporter{
		out:  out,
		pass: pass,
		fail: fail,
	}
}

func (r *ConsoleReporter) Connecting() {
	r.println("Connecting...")
}

func (r *ConsoleReporter) Sending(n int) {
	r.println(fmt.Sprintf("Sending %d bytes", n))
}

func (r *ConsoleReporter) SendCompleted() {
	r.println("Send completed")
}

func (r *ConsoleReporter) Waiting() {
	r.println("Waiting for response...")
}

func (r *ConsoleReporter) Received(n, total int) {
	r.println(fmt.Sprintf("Received %d bytes (total %d)", n, total))
}

func (r *ConsoleReporter) Passed() {
	r.println(r.pass.Sprint("Test PASSED!"))
}

func (r *ConsoleReporter) Failed(received, expected int) {
	r.println(r.fail.Sprintf("Test FAILED! Received %d/%d bytes", received, expected))
}

func (r *ConsoleReporter) Error(err error) {
	r.println(r.fail.Sprintf("Error: %v", err))
}

func (r *ConsoleReporter) println(line string) {
	_, _ = fmt.Fprintln(r.out, linePrefix+line)
}
