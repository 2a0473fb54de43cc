package chat

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
)

// Default engine settings.
const (
	DefaultLLMTimeout         = 60 * time.Second
	DefaultMaxTranscriptTurns = 40
)

// LLMClient is the completion backend. Complete returns the assistant reply
// for a transcript; an empty string with a nil error means the model
// produced no completion choices, which is a distinct non-error outcome.
type LLMClient interface {
	Complete(ctx context.Context, transcript []Turn) (string, error)
}

// Engine processes utterances against per-session state. Deterministic
// commands (reset, summary, item addition) are handled locally; everything
// else is completed by the language model.
type Engine struct {
	store    Store
	llm      LLMClient
	timeout  time.Duration
	maxTurns int

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// EngineOpts holds parameters for creating an Engine.
type EngineOpts struct {
	Store      Store
	LLM        LLMClient
	LLMTimeout time.Duration // defaults to DefaultLLMTimeout
	// MaxTranscriptTurns caps transcript growth; the oldest non-system
	// turns are dropped past this. Defaults to DefaultMaxTranscriptTurns.
	MaxTranscriptTurns int
}

// NewEngine creates an Engine.
func NewEngine(opts EngineOpts) (*Engine, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("chat: engine: store is required")
	}
	if opts.LLM == nil {
		return nil, fmt.Errorf("chat: engine: llm client is required")
	}
	timeout := opts.LLMTimeout
	if timeout <= 0 {
		timeout = DefaultLLMTimeout
	}
	maxTurns := opts.MaxTranscriptTurns
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTranscriptTurns
	}
	return &Engine{
		store:    opts.Store,
		llm:      opts.LLM,
		timeout:  timeout,
		maxTurns: maxTurns,
		locks:    make(map[string]*sync.Mutex),
	}, nil
}

// Process handles one utterance for a session and returns the reply text.
// Calls for the same session id are serialized for the whole sequence,
// including the model call, so a failed call can be reverted without another
// request interleaving; calls for different sessions run independently.
// The returned error is reserved for store failures — model failures produce
// a localized reply and a nil error.
func (e *Engine) Process(ctx context.Context, sessionID, text, lang string) (string, error) {
	lock := e.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := e.store.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	// A missing session or a language switch both start the session over.
	if sess == nil || sess.Language != lang {
		if err := e.store.Reset(ctx, sessionID, lang); err != nil {
			return "", err
		}
		sess, err = e.store.Get(ctx, sessionID)
		if err != nil {
			return "", err
		}
	}

	intent := Classify(text)
	switch intent.Kind {
	case IntentReset:
		if err := e.store.Reset(ctx, sessionID, lang); err != nil {
			return "", err
		}
		return ResetConfirmation(lang), nil

	case IntentSummarize:
		return FormatSummary(sess.Items, lang), nil

	case IntentQuickAdd:
		item := Item{Name: intent.ItemName, Note: intent.Note}
		if err := e.store.AppendItems(ctx, sessionID, []Item{item}); err != nil {
			return "", err
		}
		return FormatSummary(append(sess.Items, item), lang), nil

	case IntentBulkAdd:
		items := ParseItems(intent.Raw)
		if len(items) > 0 {
			if err := e.store.AppendItems(ctx, sessionID, items); err != nil {
				return "", err
			}
			return FormatSummary(append(sess.Items, items...), lang), nil
		}
		// A bulk marker with no parseable lines goes to the model instead
		// of returning an empty summary.
	}

	return e.freeform(ctx, sessionID, sess, text, lang)
}

// freeform appends the user turn, asks the model, and appends the reply. On
// failure the user turn is reverted so the transcript never carries an
// unpaired user entry into the next call.
func (e *Engine) freeform(ctx context.Context, sessionID string, sess *Session, text, lang string) (string, error) {
	if err := e.store.AppendTurn(ctx, sessionID, RoleUser, text); err != nil {
		return "", err
	}

	transcript := append(sess.Transcript, Turn{Role: RoleUser, Content: text})

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	reply, err := e.llm.Complete(callCtx, transcript)
	cancel()
	if err != nil {
		// Revert outside the (possibly expired) call context so a timeout
		// can't leave the half-appended transcript behind.
		revertCtx := context.WithoutCancel(ctx)
		if dropErr := e.store.DropLastTurn(revertCtx, sessionID); dropErr != nil {
			log.Printf("chat: session %s: revert user turn failed: %v", sessionID, dropErr)
		}
		log.Printf("chat: session %s: completion failed: %v", sessionID, err)
		return llmErrorMessage(lang, err), nil
	}

	reply = strings.TrimSpace(reply)
	if err := e.store.AppendTurn(ctx, sessionID, RoleAssistant, reply); err != nil {
		return "", err
	}
	if err := e.store.TrimTranscript(ctx, sessionID, e.maxTurns); err != nil {
		return "", err
	}

	if reply == "" {
		return noResponseMessage(lang), nil
	}
	return reply, nil
}

// sessionLock returns the mutex for a session id, creating it on first use.
func (e *Engine) sessionLock(id string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	lock, ok := e.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[id] = lock
	}
	return lock
}
