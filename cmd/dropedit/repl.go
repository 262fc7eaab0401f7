package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"dropedit/internal/config"
	"dropedit/internal/droptable"
	"dropedit/internal/hud"
	"dropedit/internal/input"
	"dropedit/internal/item"
	"dropedit/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var errQuit = errors.New("quit")

// session drives one chance screen from text commands. The signal handler
// and the command loop both touch the screen, so every access holds mu.
type session struct {
	mu sync.Mutex

	cfg    config.Config
	store  *droptable.Store
	screen *hud.ChanceScreen
	clicks *input.ClickMapper
	out    io.Writer
}

const help = `commands:
  show                         draw the grid
  info                         explain the current mode
  click <slot> [left|right|middle] [shift]
  dclick <slot>                double click
  mode                         click the mode toggle
  qty [+|-]                    cycle the quantity toggle
  give <type> [count]          put items into your inventory
  roll [seed]                  roll the saved table once
  save                         commit and reopen the editor
  stats                        show where time went
  quit`

func (s *session) run(r io.Reader) {
	fmt.Fprintln(s.out, render(s.screen))

	sc := bufio.NewScanner(r)
	for {
		fmt.Fprint(s.out, "> ")
		if !sc.Scan() {
			break
		}
		args := strings.Fields(sc.Text())
		if len(args) == 0 {
			continue
		}

		err := s.exec(args)
		if errors.Is(err, errQuit) {
			return
		}
		if err != nil {
			fmt.Fprintln(s.out, errorStyle.Render(err.Error()))
		}
	}
	if err := sc.Err(); err != nil {
		log.Printf("read commands: %v", err)
	}
}

func (s *session) exec(args []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch args[0] {
	case "help", "?":
		fmt.Fprintln(s.out, help)
		return nil
	case "show":
	case "info":
		fmt.Fprintln(s.out, strings.Join(s.screen.Info(), "\n"))
		return nil
	case "click":
		if err := s.click(args[1:]); err != nil {
			return err
		}
	case "dclick":
		if err := s.doubleClick(args[1:]); err != nil {
			return err
		}
	case "mode":
		if err := s.press(s.screen.Editor.ModeSlot(), glfw.MouseButtonLeft, 0); err != nil {
			return err
		}
	case "qty":
		button := glfw.MouseButtonRight
		if len(args) > 1 && args[1] == "-" {
			button = glfw.MouseButtonLeft
		}
		if err := s.press(s.screen.Editor.QuantitySlot(), button, 0); err != nil {
			return err
		}
	case "give":
		st, err := parseStack(args[1:])
		if err != nil {
			return err
		}
		if !s.screen.Inventory.AddItem(&st) {
			return fmt.Errorf("inventory full, %d left over", st.Count)
		}
	case "roll":
		return s.roll(args[1:])
	case "stats":
		if top := profiling.TopN(5); top != "" {
			fmt.Fprintln(s.out, top)
		}
		return nil
	case "save":
		if err := s.screen.Close(); err != nil {
			return err
		}
		s.clicks.Reset()
		s.screen.Init()
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, try help", args[0])
	}

	fmt.Fprintln(s.out, render(s.screen))
	return nil
}

func (s *session) click(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: click <slot> [left|right|middle] [shift]")
	}
	slot, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("slot: %w", err)
	}

	button := glfw.MouseButtonLeft
	var mods glfw.ModifierKey
	for _, a := range args[1:] {
		switch a {
		case "left":
			button = glfw.MouseButtonLeft
		case "right":
			button = glfw.MouseButtonRight
		case "middle":
			button = glfw.MouseButtonMiddle
		case "shift":
			mods |= glfw.ModShift
		default:
			return fmt.Errorf("unknown click modifier %q", a)
		}
	}
	return s.press(slot, button, mods)
}

// doubleClick sends two left presses back to back, the first one acts as
// a normal click like it does with a real mouse
func (s *session) doubleClick(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: dclick <slot>")
	}
	slot, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("slot: %w", err)
	}
	if err := s.press(slot, glfw.MouseButtonLeft, 0); err != nil {
		return err
	}
	return s.press(slot, glfw.MouseButtonLeft, 0)
}

func (s *session) press(slot int, button glfw.MouseButton, mods glfw.ModifierKey) error {
	click, ok := s.clicks.Map(slot, button, glfw.Press, mods, time.Now())
	if !ok {
		return fmt.Errorf("button %d is not bound", button)
	}

	handled, err := s.screen.HandleClick(slot, click)
	if err != nil {
		return err
	}
	if !handled {
		fmt.Fprintln(s.out, dimStyle.Render(fmt.Sprintf("%s click on %d ignored", click, slot)))
	}
	return nil
}

func (s *session) roll(args []string) error {
	seed := s.cfg.Roll.Seed
	if len(args) > 0 {
		n, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		seed = n
	}
	if seed == 0 {
		seed = rand.Uint64()
	}

	t := s.store.Table()
	drops := t.Roll(rand.New(rand.NewPCG(seed, seed)))

	fmt.Fprintf(s.out, "%s rolled with seed %d:\n", t.Name, seed)
	if len(drops) == 0 {
		fmt.Fprintln(s.out, dimStyle.Render("  nothing"))
	}
	for _, d := range drops {
		fmt.Fprintf(s.out, "  %dx %s\n", d.Count, d.DisplayName())
	}
	return nil
}

// shutdown commits pending edits when the process is asked to stop
func (s *session) shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.screen.Close(); err != nil {
		log.Printf("commit on exit: %v", err)
	}
}

func parseStack(args []string) (item.Stack, error) {
	if len(args) == 0 || len(args) > 2 {
		return item.Stack{}, errors.New("usage: give <type> [count]")
	}

	count := 1
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return item.Stack{}, fmt.Errorf("count: %w", err)
		}
		if n < 1 || n > item.MaxStackSize {
			return item.Stack{}, fmt.Errorf("count %d outside 1..%d", n, item.MaxStackSize)
		}
		count = n
	}
	return item.NewStack(item.Type(args[0]), count), nil
}
