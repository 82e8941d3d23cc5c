// Package console is the interactive terminal shell around a game session.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"war/engine"
	"war/game"
)

type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadTerritories runs the registration wizard and returns a populated map.
// Invalid answers are asked again; only a closed input aborts.
func (c *Console) ReadTerritories() (*game.Map, error) {
	var m *game.Map
	for m == nil {
		n, err := c.readInt("How many territories do you want to register? ")
		if err != nil {
			return nil, err
		}
		m, err = game.NewMap(n)
		if err != nil {
			fmt.Fprintf(c.out, "Invalid count: %v\n", err)
		}
	}

	for i := 0; i < m.Len(); i++ {
		fmt.Fprintf(c.out, "\nTerritory %d:\n", i+1)
		for {
			t, err := c.readTerritory()
			if err != nil {
				return nil, err
			}
			if err := m.Set(i, t); err != nil {
				fmt.Fprintf(c.out, "Invalid territory: %v\n", err)
				continue
			}
			break
		}
	}
	fmt.Fprintln(c.out)
	return m, nil
}

func (c *Console) readTerritory() (game.Territory, error) {
	name, err := c.readLine("Name: ")
	if err != nil {
		return game.Territory{}, err
	}
	faction, err := c.readLine("Faction: ")
	if err != nil {
		return game.Territory{}, err
	}
	troops, err := c.readInt("Troops: ")
	if err != nil {
		return game.Territory{}, err
	}

	// The faction is a single token; longer input is cut like the name
	if fields := strings.Fields(faction); len(fields) > 0 {
		faction = fields[0]
	}
	return game.Territory{
		Name:    truncate(name, game.MaxNameLen),
		Faction: truncate(faction, game.MaxFactionLen),
		Troops:  troops,
	}, nil
}

// Play drives the attack loop until the mission is accomplished, the player
// declines another attack or the input is closed.
func (c *Console) Play(s engine.Session) error {
	c.PrintMission(s.Mission())
	c.PrintMap(s.Map())

	for {
		attacker, err := c.readInt("Attacker index: ")
		if err != nil {
			return ignoreEOF(err)
		}
		defender, err := c.readInt("Defender index: ")
		if err != nil {
			return ignoreEOF(err)
		}

		report, err := s.Attack(attacker, defender)
		switch {
		case errors.Is(err, engine.ErrGameOver):
			return nil
		case errors.Is(err, game.ErrInsufficientTroops):
			fmt.Fprintf(c.out, "Not enough troops to attack!\n\n")
			continue
		case errors.Is(err, game.ErrInvalidAttackSelection):
			fmt.Fprintf(c.out, "Invalid move: %v\n\n", err)
			continue
		case err != nil:
			return err
		}

		c.PrintReport(report)
		c.PrintMap(s.Map())

		if report.Accomplished {
			fmt.Fprintf(c.out, "\n==========================\n")
			fmt.Fprintf(c.out, "MISSION ACCOMPLISHED! YOU WIN!\n")
			fmt.Fprintf(c.out, "Mission: %s\n", s.Mission())
			fmt.Fprintf(c.out, "==========================\n\n")
			return nil
		}

		again, err := c.readInt("New turn? (1 = yes, 0 = no): ")
		if err != nil {
			return ignoreEOF(err)
		}
		if again == 0 {
			return nil
		}
	}
}

func (c *Console) PrintMission(m game.Mission) {
	fmt.Fprintf(c.out, "\n=== YOUR MISSION ===\n%s\n", m)
	if d := m.Describe(); d != "" {
		fmt.Fprintf(c.out, "(%s)\n", d)
	}
	fmt.Fprintln(c.out)
}

func (c *Console) PrintMap(m *game.Map) {
	fmt.Fprintf(c.out, "=== CURRENT MAP ===\n")
	for i, t := range m.All() {
		fmt.Fprintf(c.out, "[%d] %s | Faction: %s | Troops: %d\n", i, t.Name, t.Faction, t.Troops)
	}
	fmt.Fprintln(c.out)
}

func (c *Console) PrintReport(r engine.Report) {
	o := r.Outcome
	fmt.Fprintf(c.out, "\n--- ATTACK ---\n")
	fmt.Fprintf(c.out, "%s (%s) rolled %d\n", r.Attacker.Name, o.AttackerFaction, o.AttackRoll)
	fmt.Fprintf(c.out, "%s (%s) rolled %d\n", r.Defender.Name, o.DefenderFaction, o.DefenseRoll)
	switch o.Kind {
	case game.Conquered:
		fmt.Fprintf(c.out, "Attacker won! %s now belongs to %s with %d troops.\n", r.Defender.Name, r.Defender.Faction, r.Defender.Troops)
	default:
		fmt.Fprintf(c.out, "Defender won!\n")
	}
	fmt.Fprintf(c.out, "------------------\n\n")
}

func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) readInt(prompt string) (int, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(c.out, "Please enter a whole number.\n")
			continue
		}
		return n, nil
	}
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
