package internal

import (
	"errors"
	"os/exec"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// PowerButtonConfig describes how the device power key is read and what
// short and long presses do.
type PowerButtonConfig struct {
	DevicePath      string        // evdev node, e.g. /dev/input/event1
	ButtonCode      evdev.EvCode  // Key code of the power key
	ShortPressMax   time.Duration // Presses shorter than this suspend
	CoolDownTime    time.Duration // Ignore presses this soon after the last action
	SuspendScript   string        // Run on short press
	ShutdownCommand string        // Run on long press
}

// DefaultPowerButtonConfig returns the settings used on handhelds with a
// KEY_POWER evdev node.
func DefaultPowerButtonConfig(devicePath string) PowerButtonConfig {
	return PowerButtonConfig{
		DevicePath:      devicePath,
		ButtonCode:      evdev.KEY_POWER,
		ShortPressMax:   2 * time.Second,
		CoolDownTime:    1 * time.Second,
		SuspendScript:   "/mnt/SDCARD/.system/bin/suspend",
		ShutdownCommand: "/sbin/poweroff",
	}
}

// PowerAction is what a completed press should trigger.
type PowerAction int

const (
	PowerActionNone PowerAction = iota
	PowerActionSuspend
	PowerActionShutdown
)

// powerButtonState turns key down/up values into actions.
type powerButtonState struct {
	cfg        PowerButtonConfig
	pressedAt  time.Time
	pressed    bool
	lastAction time.Time
}

// handle processes one key event value (1 down, 0 up, 2 repeat) at now.
func (s *powerButtonState) handle(value int32, now time.Time) PowerAction {
	switch value {
	case 1:
		if !s.pressed {
			s.pressed = true
			s.pressedAt = now
		}
	case 0:
		if !s.pressed {
			return PowerActionNone
		}
		s.pressed = false
		if !s.lastAction.IsZero() && now.Sub(s.lastAction) < s.cfg.CoolDownTime {
			return PowerActionNone
		}
		s.lastAction = now
		if now.Sub(s.pressedAt) < s.cfg.ShortPressMax {
			return PowerActionSuspend
		}
		return PowerActionShutdown
	}
	return PowerActionNone
}

var (
	powerDevice  *evdev.InputDevice
	powerRunning atomic.Bool
	powerWG      sync.WaitGroup
)

func startPowerButtonHandler(cfg PowerButtonConfig) {
	dev, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		GetInternalLogger().Warn("Power button device unavailable", "path", cfg.DevicePath, "error", err)
		return
	}

	powerDevice = dev
	powerRunning.Store(true)
	powerWG.Add(1)

	go func() {
		defer powerWG.Done()
		state := &powerButtonState{cfg: cfg}

		for powerRunning.Load() {
			ev, err := dev.ReadOne()
			if err != nil {
				if powerRunning.Load() {
					GetInternalLogger().Error("Power button read failed", "error", err)
				}
				return
			}
			if ev.Type != evdev.EV_KEY || ev.Code != cfg.ButtonCode {
				continue
			}

			switch state.handle(ev.Value, time.Now()) {
			case PowerActionSuspend:
				runPowerCommand("suspend", cfg.SuspendScript)
			case PowerActionShutdown:
				runPowerCommand("shutdown", cfg.ShutdownCommand)
			}
		}
	}()
}

func runPowerCommand(action, command string) {
	if command == "" {
		return
	}
	GetInternalLogger().Info("Power button action", "action", action, "command", command)
	if err := exec.Command(command).Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			GetInternalLogger().Error("Power command exited", "action", action, "code", exitErr.ExitCode())
			return
		}
		GetInternalLogger().Error("Power command failed", "action", action, "error", err)
	}
}

func stopPowerButtonHandler() {
	if !powerRunning.CompareAndSwap(true, false) {
		return
	}
	if powerDevice != nil {
		powerDevice.Close()
	}
	powerWG.Wait()
}
