package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Cell struct {
	Row  int `json:"row"`
	Col  int `json:"col"`
	Kind int `json:"kind"`
}

type GameState struct {
	Grid       [][]Cell `json:"grid"`
	Rows       int      `json:"rows"`
	Columns    int      `json:"columns"`
	TileKinds  int      `json:"tile_kinds"`
	Remaining  int      `json:"remaining"`
	Complete   bool     `json:"complete"`
	Armed      *Point   `json:"armed,omitempty"`
	Message    string   `json:"message,omitempty"`
	ConfigName string   `json:"config_name"`
	Shuffles   int      `json:"shuffles_this_game"`
}

type SessionResponse struct {
	ID         string     `json:"id"`
	ConfigName string     `json:"config_name"`
	GameState  *GameState `json:"game_state"`
}

type ActivateResponse struct {
	Outcome   string     `json:"outcome"`
	Removed   []Point    `json:"removed,omitempty"`
	Shuffled  bool       `json:"shuffled,omitempty"`
	Complete  bool       `json:"complete,omitempty"`
	Message   string     `json:"message,omitempty"`
	GameState *GameState `json:"game_state"`
}

type ShuffleResponse struct {
	Redistributed int        `json:"redistributed"`
	HasValidMoves bool       `json:"has_valid_moves"`
	GameState     *GameState `json:"game_state"`
}

type HintResponse struct {
	Found bool  `json:"found"`
	A     Point `json:"a"`
	B     Point `json:"b"`
}

type RestartResponse struct {
	Message string     `json:"message"`
	State   *GameState `json:"state"`
}

type Client struct {
	baseURL   string
	sessionID string
	client    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) CreateSession(configID string) (*GameState, error) {
	var reqBody []byte
	var err error

	if configID != "" {
		reqBody, err = json.Marshal(map[string]string{"config_id": configID})
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
	}

	resp, err := c.client.Post(c.baseURL+"/api/sessions", "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create session failed: %s - %s", resp.Status, string(body))
	}

	var session SessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("parse session response: %w", err)
	}

	c.sessionID = session.ID
	return session.GameState, nil
}

func (c *Client) GetState() (*GameState, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/state", c.baseURL, c.sessionID)
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("get state: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("get state failed: %s - %s", resp.Status, string(body))
	}

	var state GameState
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return nil, fmt.Errorf("parse state: %w", err)
	}

	return &state, nil
}

func (c *Client) Activate(p Point) (*ActivateResponse, error) {
	body, err := json.Marshal(map[string]int{"row": p.Row, "col": p.Col})
	if err != nil {
		return nil, fmt.Errorf("marshal activate: %w", err)
	}

	url := fmt.Sprintf("%s/api/sessions/%s/activate", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("activate: %w", err)
	}
	defer resp.Body.Close()

	var actResp ActivateResponse
	if err := json.NewDecoder(resp.Body).Decode(&actResp); err != nil {
		return nil, fmt.Errorf("parse activate response: %w", err)
	}

	return &actResp, nil
}

func (c *Client) Shuffle() (*ShuffleResponse, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/shuffle", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("shuffle: %w", err)
	}
	defer resp.Body.Close()

	var shufResp ShuffleResponse
	if err := json.NewDecoder(resp.Body).Decode(&shufResp); err != nil {
		return nil, fmt.Errorf("parse shuffle response: %w", err)
	}

	return &shufResp, nil
}

func (c *Client) Hint() (*HintResponse, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/hint", c.baseURL, c.sessionID)
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("hint: %w", err)
	}
	defer resp.Body.Close()

	var hintResp HintResponse
	if err := json.NewDecoder(resp.Body).Decode(&hintResp); err != nil {
		return nil, fmt.Errorf("parse hint response: %w", err)
	}

	return &hintResp, nil
}

func (c *Client) Restart() (*GameState, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/restart", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("restart: %w", err)
	}
	defer resp.Body.Close()

	var restartResp RestartResponse
	if err := json.NewDecoder(resp.Body).Decode(&restartResp); err != nil {
		return nil, fmt.Errorf("parse restart response: %w", err)
	}

	return restartResp.State, nil
}

func main() {
	serverURL := flag.String("url", "http://localhost:8080", "Game server URL")
	configID := flag.String("config", "", "Board configuration id (classic, compact, grande, daily)")
	continueSession := flag.String("continue", "", "Resume playing an existing session by ID")
	maxActivations := flag.Int("max-activations", 5000, "Maximum tile activations before giving up")
	maxShuffles := flag.Int("max-shuffles", 50, "Maximum shuffle requests before giving up")
	verbose := flag.Bool("v", false, "Verbose output")
	delayMs := flag.Int("delay", 0, "Delay between activations in milliseconds (0 = no delay)")
	flag.Parse()

	log.Printf("Connecting to game server at %s", *serverURL)
	client := NewClient(*serverURL)

	var state *GameState
	var err error

	// Check for saved session ID
	sessionFile := ".session"
	savedSessionID := ""

	if *continueSession != "" {
		savedSessionID = *continueSession
	} else {
		if data, err := os.ReadFile(sessionFile); err == nil {
			savedSessionID = string(bytes.TrimSpace(data))
		}
	}

	if savedSessionID != "" {
		// Resume existing session
		client.sessionID = savedSessionID
		log.Printf("Resuming session: %s", client.sessionID)
		state, err = client.GetState()
		if err != nil {
			log.Printf("Failed to resume session (may be expired): %v", err)
			log.Printf("Creating new session...")
			savedSessionID = "" // Force create new
		} else {
			log.Printf("Session resumed - Board: %dx%d, Tiles left: %d",
				state.Rows, state.Columns, state.Remaining)
		}
	}

	if savedSessionID == "" {
		state, err = client.CreateSession(*configID)
		if err != nil {
			log.Fatalf("Failed to create session: %v", err)
		}
		log.Printf("Session created: %s", client.sessionID)
		log.Printf("Board: %dx%d, %d kinds, %d tiles to clear",
			state.Rows, state.Columns, state.TileKinds, state.Remaining)

		// Save session ID for next run
		if err := os.WriteFile(sessionFile, []byte(client.sessionID), 0644); err != nil {
			log.Printf("Warning: Failed to save session ID: %v", err)
		}
	}

	// Restart so every run starts from a full board
	log.Printf("Restarting board...")
	state, err = client.Restart()
	if err != nil {
		log.Fatalf("Failed to restart: %v", err)
	}
	if state == nil {
		state, err = client.GetState()
		if err != nil {
			log.Fatalf("Failed to fetch state after restart: %v", err)
		}
	}

	strategy := NewGreedyStrategy()

	activations := 0
	matches := 0
	shuffles := 0

	for !state.Complete && activations < *maxActivations {
		a, b, found := strategy.FindPair(state)
		if !found {
			// Our local search sees no pair; confirm with the server before shuffling
			hint, err := client.Hint()
			if err != nil {
				log.Fatalf("Hint request failed: %v", err)
			}
			if hint.Found {
				a, b = hint.A, hint.B
				if *verbose {
					log.Printf("Local search missed a pair; server hints (%d,%d)-(%d,%d)",
						a.Row, a.Col, b.Row, b.Col)
				}
			} else {
				if shuffles >= *maxShuffles {
					log.Printf("Shuffle limit reached (%d)", shuffles)
					break
				}
				shufResp, err := client.Shuffle()
				if err != nil {
					log.Fatalf("Shuffle failed: %v", err)
				}
				shuffles++
				if shufResp.GameState != nil {
					state = shufResp.GameState
				}
				if *verbose {
					log.Printf("Shuffled (%d tiles redistributed, valid moves: %v)",
						shufResp.Redistributed, shufResp.HasValidMoves)
				}
				continue
			}
		}

		// Arm the first tile, then link the second
		if _, err := client.Activate(a); err != nil {
			log.Fatalf("Activation failed: %v", err)
		}
		actResp, err := client.Activate(b)
		if err != nil {
			log.Fatalf("Activation failed: %v", err)
		}
		activations += 2

		switch actResp.Outcome {
		case "matched":
			matches++
			if *verbose {
				log.Printf("Matched (%d,%d)-(%d,%d), %d tiles left",
					a.Row, a.Col, b.Row, b.Col, actResp.GameState.Remaining)
			}
			if actResp.Shuffled {
				shuffles++
				log.Printf("Board deadlocked after match; server shuffled")
			}
		case "rejected":
			// Resolution in flight; re-fetch and retry the pair next round
			if *verbose {
				log.Printf("Activation rejected mid-resolution, retrying")
			}
		default:
			log.Printf("Unexpected outcome %q for (%d,%d)-(%d,%d): %s",
				actResp.Outcome, a.Row, a.Col, b.Row, b.Col, actResp.Message)
		}

		if actResp.GameState != nil {
			state = actResp.GameState
		} else {
			state, err = client.GetState()
			if err != nil {
				log.Fatalf("Failed to fetch state: %v", err)
			}
		}

		if *delayMs > 0 {
			time.Sleep(time.Duration(*delayMs) * time.Millisecond)
		}
	}

	log.Printf("Run finished: %d matches, %d activations, %d shuffles, %d tiles left",
		matches, activations, shuffles, state.Remaining)

	if state.Complete {
		log.Printf("BOARD CLEARED in %d matches!", matches)
		log.Printf("Session: %s", client.sessionID)
		os.Exit(0)
	}

	log.Printf("Failed to clear the board")
	log.Printf("Session: %s", client.sessionID)
	os.Exit(1)
}
