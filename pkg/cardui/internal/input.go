package internal

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/kaushalbhalara/routerdemo/pkg/cardui/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Event is a virtual button press or release.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool
}

// InputMapping translates physical inputs into virtual buttons.
type InputMapping struct {
	Keyboard   map[sdl.Keycode]constants.VirtualButton
	Controller map[sdl.GameControllerButton]constants.VirtualButton
	Hat        map[uint8]constants.VirtualButton
}

// mappingFile is the TOML form of a custom mapping. Each table maps a
// virtual button name to the SDL names that trigger it:
//
//	[keyboard]
//	A = ["Return", "Space"]
//
//	[controller]
//	A = ["b"]
type mappingFile struct {
	Keyboard   map[string][]string `toml:"keyboard"`
	Controller map[string][]string `toml:"controller"`
}

var (
	flipFaceButtons bool
	customMapping   *InputMapping

	processorOnce  sync.Once
	inputProcessor *InputProcessor
)

// SetFlipFaceButtons selects direct face button mapping (A=A, B=B).
// The default is the Nintendo-style swap used by most handheld firmware.
func SetFlipFaceButtons(flip bool) {
	flipFaceButtons = flip
}

func flipFromEnv() bool {
	v := os.Getenv(constants.FlipFaceButtonsEnvVar)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// DefaultInputMapping returns the built-in keyboard, controller and hat bindings.
func DefaultInputMapping(flip bool) *InputMapping {
	var faceA, faceB, faceX, faceY sdl.GameControllerButton = sdl.CONTROLLER_BUTTON_B, sdl.CONTROLLER_BUTTON_A,
		sdl.CONTROLLER_BUTTON_Y, sdl.CONTROLLER_BUTTON_X
	if flip {
		faceA, faceB = sdl.CONTROLLER_BUTTON_A, sdl.CONTROLLER_BUTTON_B
		faceX, faceY = sdl.CONTROLLER_BUTTON_X, sdl.CONTROLLER_BUTTON_Y
	}

	return &InputMapping{
		Keyboard: map[sdl.Keycode]constants.VirtualButton{
			sdl.K_UP:        constants.VirtualButtonUp,
			sdl.K_DOWN:      constants.VirtualButtonDown,
			sdl.K_LEFT:      constants.VirtualButtonLeft,
			sdl.K_RIGHT:     constants.VirtualButtonRight,
			sdl.K_RETURN:    constants.VirtualButtonA,
			sdl.K_SPACE:     constants.VirtualButtonA,
			sdl.K_BACKSPACE: constants.VirtualButtonB,
			sdl.K_ESCAPE:    constants.VirtualButtonB,
			sdl.K_x:         constants.VirtualButtonX,
			sdl.K_y:         constants.VirtualButtonY,
			sdl.K_s:         constants.VirtualButtonStart,
			sdl.K_TAB:       constants.VirtualButtonSelect,
			sdl.K_HOME:      constants.VirtualButtonMenu,
			sdl.K_h:         constants.VirtualButtonMenu,
		},
		Controller: map[sdl.GameControllerButton]constants.VirtualButton{
			sdl.CONTROLLER_BUTTON_DPAD_UP:    constants.VirtualButtonUp,
			sdl.CONTROLLER_BUTTON_DPAD_DOWN:  constants.VirtualButtonDown,
			sdl.CONTROLLER_BUTTON_DPAD_LEFT:  constants.VirtualButtonLeft,
			sdl.CONTROLLER_BUTTON_DPAD_RIGHT: constants.VirtualButtonRight,
			faceA:                            constants.VirtualButtonA,
			faceB:                            constants.VirtualButtonB,
			faceX:                            constants.VirtualButtonX,
			faceY:                            constants.VirtualButtonY,
			sdl.CONTROLLER_BUTTON_START:      constants.VirtualButtonStart,
			sdl.CONTROLLER_BUTTON_BACK:       constants.VirtualButtonSelect,
			sdl.CONTROLLER_BUTTON_GUIDE:      constants.VirtualButtonMenu,
		},
		Hat: map[uint8]constants.VirtualButton{
			sdl.HAT_UP:    constants.VirtualButtonUp,
			sdl.HAT_DOWN:  constants.VirtualButtonDown,
			sdl.HAT_LEFT:  constants.VirtualButtonLeft,
			sdl.HAT_RIGHT: constants.VirtualButtonRight,
		},
	}
}

// ParseInputMapping reads a TOML mapping and applies it on top of base.
// Unknown button names or SDL names are reported as errors.
func ParseInputMapping(data []byte, base *InputMapping) (*InputMapping, error) {
	var file mappingFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, fmt.Errorf("decode input mapping: %w", err)
	}

	mapping := &InputMapping{
		Keyboard:   make(map[sdl.Keycode]constants.VirtualButton, len(base.Keyboard)),
		Controller: make(map[sdl.GameControllerButton]constants.VirtualButton, len(base.Controller)),
		Hat:        base.Hat,
	}
	for k, v := range base.Keyboard {
		mapping.Keyboard[k] = v
	}
	for k, v := range base.Controller {
		mapping.Controller[k] = v
	}

	for name, keys := range file.Keyboard {
		vb, ok := constants.ParseVirtualButton(name)
		if !ok {
			return nil, fmt.Errorf("keyboard: unknown button %q", name)
		}
		for _, key := range keys {
			code := sdl.GetKeyFromName(key)
			if code == sdl.K_UNKNOWN {
				return nil, fmt.Errorf("keyboard: unknown key %q for %s", key, name)
			}
			mapping.Keyboard[code] = vb
		}
	}

	for name, buttons := range file.Controller {
		vb, ok := constants.ParseVirtualButton(name)
		if !ok {
			return nil, fmt.Errorf("controller: unknown button %q", name)
		}
		for _, button := range buttons {
			b := sdl.GameControllerGetButtonFromString(button)
			if b == sdl.CONTROLLER_BUTTON_INVALID {
				return nil, fmt.Errorf("controller: unknown button %q for %s", button, name)
			}
			mapping.Controller[b] = vb
		}
	}

	return mapping, nil
}

// SetInputMappingBytes loads a custom TOML mapping applied when the
// input processor is created.
func SetInputMappingBytes(data []byte) error {
	mapping, err := ParseInputMapping(data, DefaultInputMapping(flipFaceButtons || flipFromEnv()))
	if err != nil {
		return err
	}
	customMapping = mapping
	return nil
}

// InputProcessor turns SDL events into virtual button events.
type InputProcessor struct {
	mapping     *InputMapping
	controllers map[sdl.JoystickID]*sdl.GameController
}

// InitInputProcessor creates the shared processor and opens any
// controllers that are already connected.
func InitInputProcessor() {
	processorOnce.Do(func() {
		mapping := customMapping
		if mapping == nil {
			mapping = DefaultInputMapping(flipFaceButtons || flipFromEnv())
		}
		inputProcessor = &InputProcessor{
			mapping:     mapping,
			controllers: make(map[sdl.JoystickID]*sdl.GameController),
		}
		for i := 0; i < sdl.NumJoysticks(); i++ {
			inputProcessor.openController(i)
		}
	})
}

func GetInputProcessor() *InputProcessor {
	InitInputProcessor()
	return inputProcessor
}

// NewInputProcessor creates a processor with the given mapping.
// It does not open controllers.
func NewInputProcessor(mapping *InputMapping) *InputProcessor {
	return &InputProcessor{
		mapping:     mapping,
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
	}
}

func (p *InputProcessor) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		GetInternalLogger().Warn("Failed to open controller", "index", index, "error", sdl.GetError())
		return
	}
	id := controller.Joystick().InstanceID()
	p.controllers[id] = controller
	GetInternalLogger().Debug("Controller connected", "name", controller.Name(), "id", id)
}

// ProcessSDLEvent returns the virtual button event for e, or nil if e
// is not a mapped input.
func (p *InputProcessor) ProcessSDLEvent(e sdl.Event) *Event {
	switch ev := e.(type) {
	case *sdl.KeyboardEvent:
		vb, ok := p.mapping.Keyboard[ev.Keysym.Sym]
		if !ok {
			return nil
		}
		return &Event{Button: vb, Pressed: ev.State == sdl.PRESSED, Repeat: ev.Repeat != 0}

	case *sdl.ControllerButtonEvent:
		vb, ok := p.mapping.Controller[sdl.GameControllerButton(ev.Button)]
		if !ok {
			return nil
		}
		return &Event{Button: vb, Pressed: ev.State == sdl.PRESSED}

	case *sdl.JoyHatEvent:
		if ev.Value == sdl.HAT_CENTERED {
			return nil
		}
		vb, ok := p.mapping.Hat[ev.Value]
		if !ok {
			return nil
		}
		return &Event{Button: vb, Pressed: true}

	case *sdl.ControllerDeviceEvent:
		if ev.Type == sdl.CONTROLLERDEVICEADDED {
			p.openController(int(ev.Which))
		} else if ev.Type == sdl.CONTROLLERDEVICEREMOVED {
			if c, ok := p.controllers[ev.Which]; ok {
				c.Close()
				delete(p.controllers, ev.Which)
			}
		}
	}
	return nil
}

func CloseAllControllers() {
	if inputProcessor == nil {
		return
	}
	for id, c := range inputProcessor.controllers {
		c.Close()
		delete(inputProcessor.controllers, id)
	}
}
