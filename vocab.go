package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Vocabulary holds the word lists that drive normalization, intent
// classification and prefix stripping. Defaults cover the production
// vocabulary; any list can be overridden from a JSON file.
type Vocabulary struct {
	// FillerWords are stand-alone tokens dropped before matching: articles,
	// prepositions and domain nouns used as command words rather than
	// search values.
	FillerWords []string `json:"filler_words"`
	// Greetings are matched as substrings of the raw input.
	Greetings []string `json:"greetings"`
	// CommandKeywords signal a fuzzy natural-language request when the
	// input starts with one of them.
	CommandKeywords []string `json:"command_keywords"`
	// CommandPrefixes are stripped from the front of a fuzzy query before
	// tokenization. Checked longest first.
	CommandPrefixes []string `json:"command_prefixes"`
}

// DefaultVocabulary returns the built-in production word lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		FillerWords: []string{
			"about", "on", "for", "of", "the", "a", "an", "me", "show",
			"list", "display", "find", "fetch", "tell", "give", "can", "you",
			"all", "in", "clause", "document", "client", "type",
			"issue", "issues", "negotiated", "fni",
		},
		Greetings: []string{
			"hi", "hello", "hey", "good morning", "good afternoon",
			"good evening", "what's up", "whatsup", "good day", "greetings",
		},
		CommandKeywords: []string{
			"show", "show me", "display", "find", "fetch", "list",
			"search", "search for", "view", "tell me", "tell me about",
			"give me", "can you show", "show me fni for", "give me fni for",
		},
		CommandPrefixes: []string{
			"what are the negotiated issues on",
			"show me negotiated issues about",
			"list issues in",
			"show me fni for",
			"give me fni for",
			"can you show",
			"tell me about",
			"search for",
			"show me",
			"give me",
			"tell me",
			"display",
			"search",
			"fetch",
			"find",
			"list",
			"view",
			"show",
		},
	}
}

// VocabStore caches the active vocabulary with optional file watching.
// With no file configured it serves the built-in defaults.
type VocabStore struct {
	sync.RWMutex
	vocab    Vocabulary
	loadedAt time.Time
	modTime  time.Time
	filePath string
	watcher  *fsnotify.Watcher
}

func NewVocabStore(filePath string) (*VocabStore, error) {
	vs := &VocabStore{
		vocab:    normalizeVocabulary(DefaultVocabulary()),
		loadedAt: time.Now(),
		filePath: filePath,
	}

	if filePath == "" {
		return vs, nil
	}

	if err := vs.loadFile(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the containing directory; editors replace files on save and
	// a watch on the file itself is lost after the first rename.
	if err := watcher.Add(filepath.Dir(filePath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch vocabulary directory: %w", err)
	}

	vs.watcher = watcher
	log.Printf("File watcher initialized for: %s", filePath)
	return vs, nil
}

func (vs *VocabStore) Close() {
	if vs.watcher != nil {
		vs.watcher.Close()
	}
}

// WatchFile reloads the vocabulary whenever the override file changes.
// Run in a goroutine; returns when the watcher is closed.
func (vs *VocabStore) WatchFile() {
	if vs.watcher == nil {
		return
	}
	log.Println("Vocabulary file watcher started")

	for {
		select {
		case event, ok := <-vs.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 &&
				filepath.Clean(event.Name) == filepath.Clean(vs.filePath) {
				// Small delay to ensure the file write is complete
				time.Sleep(100 * time.Millisecond)

				log.Printf("Vocabulary file changed: %s, reloading", event.Name)
				if err := vs.Reload(); err != nil {
					log.Printf("Vocabulary reload failed, keeping previous lists: %v", err)
				}
			}

		case err, ok := <-vs.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}

// Reload re-reads the override file. The previous vocabulary stays active
// if the file is missing or unparseable.
func (vs *VocabStore) Reload() error {
	if vs.filePath == "" {
		return nil
	}
	return vs.loadFile()
}

func (vs *VocabStore) loadFile() error {
	data, err := os.ReadFile(vs.filePath)
	if err != nil {
		return fmt.Errorf("failed to load vocabulary file: %w", err)
	}

	// Start from defaults so a partial override keeps the other lists.
	vocab := DefaultVocabulary()
	if err := json.Unmarshal(data, &vocab); err != nil {
		return fmt.Errorf("failed to parse vocabulary file: %w", err)
	}

	info, err := os.Stat(vs.filePath)
	modTime := time.Now()
	if err == nil {
		modTime = info.ModTime()
	}

	vs.Lock()
	vs.vocab = normalizeVocabulary(vocab)
	vs.loadedAt = time.Now()
	vs.modTime = modTime
	vs.Unlock()

	log.Printf("Loaded vocabulary from %s: %d fillers, %d greetings, %d command keywords, %d prefixes",
		vs.filePath, len(vocab.FillerWords), len(vocab.Greetings),
		len(vocab.CommandKeywords), len(vocab.CommandPrefixes))
	return nil
}

// Current returns the active vocabulary, reloading first when the override
// file was modified since the last load.
func (vs *VocabStore) Current() Vocabulary {
	if vs.filePath != "" {
		if modified, err := vs.isFileModified(); err == nil && modified {
			log.Printf("Detected modification for %s, reloading", vs.filePath)
			if err := vs.loadFile(); err != nil {
				log.Printf("Vocabulary reload failed, keeping previous lists: %v", err)
			}
		}
	}

	vs.RLock()
	defer vs.RUnlock()
	return vs.vocab
}

func (vs *VocabStore) isFileModified() (bool, error) {
	info, err := os.Stat(vs.filePath)
	if err != nil {
		return false, err
	}

	vs.RLock()
	last := vs.modTime
	vs.RUnlock()

	return info.ModTime().After(last), nil
}

// Info reports the store state for the admin endpoint.
func (vs *VocabStore) Info() map[string]interface{} {
	vs.RLock()
	defer vs.RUnlock()

	source := "builtin defaults"
	if vs.filePath != "" {
		source = vs.filePath
	}

	return map[string]interface{}{
		"source":           source,
		"loaded_at":        vs.loadedAt,
		"filler_words":     len(vs.vocab.FillerWords),
		"greetings":        len(vs.vocab.Greetings),
		"command_keywords": len(vs.vocab.CommandKeywords),
		"command_prefixes": len(vs.vocab.CommandPrefixes),
	}
}

// normalizeVocabulary lower-cases every list and orders prefixes longest
// first so the most specific pattern always wins.
func normalizeVocabulary(v Vocabulary) Vocabulary {
	lower := func(ss []string) []string {
		out := make([]string, 0, len(ss))
		for _, s := range ss {
			s = strings.ToLower(strings.TrimSpace(s))
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	}

	v.FillerWords = lower(v.FillerWords)
	v.Greetings = lower(v.Greetings)
	v.CommandKeywords = lower(v.CommandKeywords)
	v.CommandPrefixes = lower(v.CommandPrefixes)

	sort.SliceStable(v.CommandPrefixes, func(i, j int) bool {
		return len(v.CommandPrefixes[i]) > len(v.CommandPrefixes[j])
	})

	return v
}
