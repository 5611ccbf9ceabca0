package recording

import "fmt"

// CreateList adds a new user-defined episode list. It fails if name is
// already taken.
func (r *Recording) CreateList(name, colour string, hotkey rune) error {
	if _, exists := r.lists[name]; exists {
		return fmt.Errorf("recording: list %q already exists", name)
	}
	r.lists[name] = &UserList{Indices: map[int]struct{}{}, Colour: colour, Hotkey: hotkey}
	return nil
}

// DeleteList removes a user-defined list. The predefined "all" list cannot
// be deleted (spec §3).
func (r *Recording) DeleteList(name string) error {
	if name == AllListName {
		return fmt.Errorf("recording: cannot delete the %q list", AllListName)
	}
	if _, exists := r.lists[name]; !exists {
		return fmt.Errorf("%w: %q", ErrUnknownList, name)
	}
	delete(r.lists, name)
	return nil
}

// AddToList adds an episode index (valid in the current series) to a list.
func (r *Recording) AddToList(name string, episodeIndex int) error {
	l, ok := r.lists[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownList, name)
	}
	if episodeIndex < 0 || episodeIndex >= len(r.CurrentSeries().Episodes) {
		return fmt.Errorf("recording: episode index %d out of range", episodeIndex)
	}
	l.Indices[episodeIndex] = struct{}{}
	return nil
}

// RemoveFromList removes an episode index from a list ("all" excepted, per
// spec §3 it is always every index of the current series).
func (r *Recording) RemoveFromList(name string, episodeIndex int) error {
	if name == AllListName {
		return fmt.Errorf("recording: cannot edit the %q list directly", AllListName)
	}
	l, ok := r.lists[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownList, name)
	}
	delete(l.Indices, episodeIndex)
	return nil
}

// List returns the named list, or ErrUnknownList.
func (r *Recording) List(name string) (*UserList, error) {
	l, ok := r.lists[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownList, name)
	}
	return l, nil
}

// ListNames returns every registered list name.
func (r *Recording) ListNames() []string {
	names := make([]string, 0, len(r.lists))
	for n := range r.lists {
		names = append(names, n)
	}
	return names
}

// SelectedEpisodes returns the union (duplicates removed) of the episode
// indices of the named lists, evaluated against the current series (spec
// §3's "selected episodes" view; supplemented per SPEC_FULL.md from
// original_source/recording.py's `selected_episodes`).
func (r *Recording) SelectedEpisodes(listNames ...string) ([]int, error) {
	seen := map[int]struct{}{}
	for _, name := range listNames {
		l, ok := r.lists[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownList, name)
		}
		for idx := range l.Indices {
			seen[idx] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for idx := range seen {
		out = append(out, idx)
	}
	return out, nil
}
