package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/kiryu-dev/tic-tac-toe-ai/internal/adapters/webapi"
	"github.com/kiryu-dev/tic-tac-toe-ai/internal/domain"
	"github.com/kiryu-dev/tic-tac-toe-ai/internal/transport/ws"
	"github.com/kiryu-dev/tic-tac-toe-ai/pkg/utils"
	"github.com/pkg/errors"
)

var errQuit = errors.New("quit")

func main() {
	host := flag.String("host", "localhost:8080", "game server address")
	flag.Parse()
	health, err := webapi.New().HealthCheck(context.Background(), "http://"+*host)
	if err != nil {
		log.Fatal("health check: " + err.Error())
	}
	log.Printf("server is up, %d active sessions", health.ActiveSessions)
	u := url.URL{Scheme: "ws", Host: *host, Path: ws.GameEndpoint}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatal("dial: " + err.Error())
	}
	defer func() {
		_ = conn.Close()
	}()
	go func() {
		if err := render(conn); err != nil {
			log.Println(err)
		}
	}()
	if err := handleInput(conn, bufio.NewScanner(os.Stdin)); err != nil && !errors.Is(err, errQuit) {
		log.Println(err)
	}
	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteMessage(websocket.CloseMessage, closeMsg)
}

func render(conn *websocket.Conn) error {
	for {
		msg := new(domain.Message)
		if err := conn.ReadJSON(msg); err != nil {
			return errors.WithMessage(err, "read json msg")
		}
		if msg.Type != domain.GameSnapshot {
			continue
		}
		snapshot, err := utils.DecodePayload[domain.Snapshot](msg.Payload)
		if err != nil {
			return errors.WithMessage(err, "decode 'Snapshot' payload")
		}
		printSnapshot(snapshot)
	}
}

func handleInput(conn *websocket.Conn, scanner *bufio.Scanner) error {
	for scanner.Scan() {
		msg, err := parseCommand(scanner.Text())
		if err != nil {
			if errors.Is(err, errQuit) {
				return err
			}
			fmt.Println(err)
			continue
		}
		if err := conn.WriteJSON(msg); err != nil {
			return errors.WithMessage(err, "write json msg")
		}
	}
	return scanner.Err()
}

func parseCommand(line string) (domain.Message, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return domain.Message{}, errors.New("empty command")
	}
	switch fields[0] {
	case "quit":
		return domain.Message{}, errQuit
	case "reset":
		return domain.Message{Type: domain.ResetGame}, nil
	case "mode":
		if len(fields) != 2 {
			return domain.Message{}, errors.New("usage: mode pvp|easy|medium|hard")
		}
		mode, err := domain.ParseMode(fields[1])
		if err != nil {
			return domain.Message{}, err
		}
		return domain.Message{
			Type:    domain.SelectMode,
			Payload: domain.SelectModePayload{Mode: mode},
		}, nil
	}
	pos, err := strconv.ParseUint(fields[0], 10, 8)
	if err != nil || pos < 1 || pos > domain.BoardSize {
		return domain.Message{}, errors.Errorf("unknown command '%s'", line)
	}
	return domain.Message{
		Type:    domain.ActivateCell,
		Payload: domain.ActivateCellPayload{Position: int(pos - 1)},
	}, nil
}

func printSnapshot(snapshot domain.Snapshot) {
	fmt.Printf("\033[H\033[J")
	fmt.Printf("mode: %s\n\n", snapshot.Mode)
	for i, cell := range snapshot.Board {
		if cell == "" {
			cell = strconv.Itoa(i + 1)
		}
		if (i+1)%3 == 0 {
			fmt.Printf("%s ", cell)
			if i < 6 {
				fmt.Printf("\n——|———|——\n")
			}
		} else {
			fmt.Printf("%s | ", cell)
		}
	}
	fmt.Println()
	switch {
	case snapshot.Outcome != "":
		fmt.Println(snapshot.Outcome)
	case snapshot.Phase == domain.AwaitingAIMove:
		fmt.Println("computer is thinking...")
	default:
		fmt.Printf("%s to move: ", snapshot.Turn)
	}
}
