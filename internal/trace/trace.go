// Package trace implements cpu.Tracer on top of logrus, the way
// other_examples/76e1325a_weiyilai-calico__felix-bpf-asm-asm.go.go logs a
// BPF assembler's per-instruction output: log.Debugf for the routine case,
// log.WithError(err).Error for the terminal one.
package trace

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/rv32i-labs/rv32i/pkg/cpu"
)

// Level controls how much per-cycle detail LogrusTracer emits.
type Level int

const (
	// LevelQuiet emits nothing per cycle; only a final fault is logged.
	LevelQuiet Level = iota
	// LevelVerbose emits a one-line mnemonic trace per cycle.
	LevelVerbose
	// LevelDebug emits the one-line trace plus the full register dump.
	LevelDebug
)

// LogrusTracer is a cpu.Tracer backed by a *logrus.Logger.
type LogrusTracer struct {
	log   *logrus.Logger
	level Level
}

// New returns a LogrusTracer writing to out at the given level.
func New(out io.Writer, level Level) *LogrusTracer {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if level != LevelQuiet {
		log.SetLevel(logrus.DebugLevel)
	}
	return &LogrusTracer{log: log, level: level}
}

var _ cpu.Tracer = (*LogrusTracer)(nil)

// TraceCycle implements cpu.Tracer.
func (t *LogrusTracer) TraceCycle(cycle uint64, pc uint32, inst cpu.Instruction, regs [cpu.NumRegisters]uint32) {
	if t.level == LevelQuiet {
		return
	}
	t.log.Debugf("cycle=%d pc=%#08x %s", cycle, pc, inst)
	if t.level == LevelDebug {
		t.log.WithField("regs", formatRegs(regs)).Debug("register file")
	}
}

// TraceFault implements cpu.Tracer.
func (t *LogrusTracer) TraceFault(cycle uint64, err error, regs [cpu.NumRegisters]uint32) {
	t.log.WithError(err).WithFields(logrus.Fields{
		"cycle": cycle,
		"regs":  formatRegs(regs),
	}).Error("cpu: run terminated")
}

// formatRegs renders the register file as signed 32-bit decimals, per
// spec.md §6's debug-output contract.
func formatRegs(regs [cpu.NumRegisters]uint32) []int32 {
	out := make([]int32, cpu.NumRegisters)
	for i, v := range regs {
		out[i] = int32(v)
	}
	return out
}
