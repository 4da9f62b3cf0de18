// Package history records reversible edits against a draft.Set and
// exposes linear undo/redo over them.
package history

import (
	"fmt"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/draft"
)

// Command is one reversible edit. Apply performs the forward effect,
// Revert exactly undoes it. Commands carry enough copied state (prior
// shape values) to revert without consulting anything else.
type Command interface {
	Apply(set *draft.Set) error
	Revert(set *draft.Set) error
	Name() string
}

// AddShape inserts a shape.
type AddShape struct {
	Shape draft.Shape
}

func (c AddShape) Apply(set *draft.Set) error {
	set.Insert(c.Shape)
	return nil
}

func (c AddShape) Revert(set *draft.Set) error {
	if err := set.Remove(c.Shape.ID); err != nil {
		return fmt.Errorf("revert add: %w", err)
	}
	return nil
}

func (c AddShape) Name() string { return "add " + c.Shape.Kind.String() }

// RemoveShape deletes a shape; Prior holds the removed value, Z
// included, so Revert can put it back in place.
type RemoveShape struct {
	ID    draft.ID
	Prior draft.Shape
}

func (c RemoveShape) Apply(set *draft.Set) error {
	if err := set.Remove(c.ID); err != nil {
		return fmt.Errorf("apply remove: %w", err)
	}
	return nil
}

func (c RemoveShape) Revert(set *draft.Set) error {
	set.Restore(c.Prior)
	return nil
}

func (c RemoveShape) Name() string { return "remove " + c.Prior.Kind.String() }

// ModifyShape swaps a shape value; both the prior and next values are
// stored so the command is self-inverse-describing.
type ModifyShape struct {
	ID    draft.ID
	Prior draft.Shape
	Next  draft.Shape
}

func (c ModifyShape) Apply(set *draft.Set) error {
	if err := set.Replace(c.ID, c.Next); err != nil {
		return fmt.Errorf("apply modify: %w", err)
	}
	return nil
}

func (c ModifyShape) Revert(set *draft.Set) error {
	if err := set.Replace(c.ID, c.Prior); err != nil {
		return fmt.Errorf("revert modify: %w", err)
	}
	return nil
}

func (c ModifyShape) Name() string { return "modify " + c.Next.Kind.String() }

// History is the linear edit timeline: a command sequence plus a
// cursor. Commands below the cursor are applied; commands at or above
// it are redoable. A new edit after undo discards the redo tail.
type History struct {
	set      *draft.Set
	commands []Command
	cursor   int
}

// New wraps the given set. The history assumes exclusive ownership of
// all mutations; callers must not mutate the set directly.
func New(set *draft.Set) *History {
	return &History{set: set}
}

// Set returns the shape set the history mutates.
func (h *History) Set() *draft.Set {
	return h.set
}

// Execute applies the command, records it at the cursor, and discards
// any previously undone tail. A command that fails to apply is not
// recorded.
func (h *History) Execute(cmd Command) error {
	if err := cmd.Apply(h.set); err != nil {
		return err
	}
	h.commands = append(h.commands[:h.cursor], cmd)
	h.cursor++
	return nil
}

// Undo reverts the most recent applied command. At the beginning of
// the timeline it is a reported no-op, not an error.
func (h *History) Undo() bool {
	if h.cursor == 0 {
		return false
	}
	h.cursor--
	if err := h.commands[h.cursor].Revert(h.set); err != nil {
		// Revert can only fail if the cursor invariant was broken,
		// which is unreachable through this API.
		panic(fmt.Sprintf("history: revert %s: %v", h.commands[h.cursor].Name(), err))
	}
	return true
}

// Redo re-applies the most recently undone command, or reports a
// no-op at the end of the timeline.
func (h *History) Redo() bool {
	if h.cursor == len(h.commands) {
		return false
	}
	if err := h.commands[h.cursor].Apply(h.set); err != nil {
		panic(fmt.Sprintf("history: redo %s: %v", h.commands[h.cursor].Name(), err))
	}
	h.cursor++
	return true
}

// CanUndo reports whether Undo would do anything.
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether Redo would do anything.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.commands)
}

// Len returns the number of recorded commands.
func (h *History) Len() int {
	return len(h.commands)
}

// Cursor returns the current timeline position in [0, Len()].
func (h *History) Cursor() int {
	return h.cursor
}

// Replay builds a fresh set by applying commands [0, cursor) from
// empty. The live set must always equal the replayed one; tests lean
// on this.
func (h *History) Replay() (*draft.Set, error) {
	set := draft.NewSet()
	for i := 0; i < h.cursor; i++ {
		if err := h.commands[i].Apply(set); err != nil {
			return nil, fmt.Errorf("replay command %d (%s): %w", i, h.commands[i].Name(), err)
		}
	}
	return set, nil
}
