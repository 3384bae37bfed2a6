// Command kiosk is a line-mode front end for the checkout flow. It
// owns a seat board and a checkout wizard for one room, keeps the
// occupancy fresh with a background poll, and walks the user through
// seat selection, payment and the printed ticket.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/cinestructura/taquilla/internal/board"
	"github.com/cinestructura/taquilla/internal/checkout"
	"github.com/cinestructura/taquilla/internal/client"
	"github.com/cinestructura/taquilla/internal/config"
	"github.com/cinestructura/taquilla/internal/model"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadSession()

	api := client.New(cfg.ServerURL, cfg.RequestTimeout)
	b := board.New(cfg.RoomID, cfg.Pricing, api)
	wizard := checkout.New(b, api, cfg.Pricing)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b.Initialize(ctx)

	poller := &board.Poller{Board: b, Interval: cfg.PollInterval, Skip: wizard.InFlight}
	go poller.Run(ctx)

	fmt.Printf("Sala %s — %s por asiento\n", cfg.RoomID, cfg.Pricing.Format(cfg.Pricing.UnitPrice))
	fmt.Println("comandos: board | pick <n> | next | back | pay | menu | combo <id> | quit")

	in := bufio.NewScanner(os.Stdin)
	for prompt(wizard); in.Scan(); prompt(wizard) {
		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "board":
			printBoard(b)
		case "pick":
			if len(fields) < 2 {
				fmt.Println("uso: pick <n>")
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 1 || n > model.SeatsPerRoom {
				fmt.Printf("asiento inválido, usa 1..%d\n", model.SeatsPerRoom)
				continue
			}
			state, changed := b.Toggle(model.SeatID(cfg.RoomID, n))
			if !changed {
				fmt.Printf("asiento %d no disponible\n", n)
				continue
			}
			fmt.Printf("asiento %d %s — %d asiento(s), subtotal %s\n",
				n, state, b.Count(), cfg.Pricing.Format(b.Subtotal()))
		case "next":
			if err := wizard.Advance(); err != nil {
				fmt.Println(checkout.DisplayMessage(err))
				continue
			}
			fmt.Printf("total a pagar por %d asiento(s): %s\n",
				b.Count(), cfg.Pricing.Format(wizard.Total()))
		case "back":
			if err := wizard.Back(); err != nil {
				fmt.Println(checkout.DisplayMessage(err))
			}
		case "pay":
			form := readCard(in)
			ticket, err := wizard.Submit(ctx, form)
			if err != nil {
				fmt.Println(checkout.DisplayMessage(err))
				continue
			}
			fmt.Println("¡compra exitosa!")
			fmt.Println(ticket)
		case "menu":
			for _, combo := range model.Menu {
				fmt.Printf("%s  %s — %s (%s)\n",
					combo.ID, combo.Name, cfg.Pricing.Format(combo.Price), strings.Join(combo.Items, ", "))
			}
		case "combo":
			if len(fields) < 2 {
				fmt.Println("uso: combo <id>")
				continue
			}
			form := readCard(in)
			ticket, err := checkout.BuyCombo(ctx, api, fields[1], form)
			if err != nil {
				fmt.Println(checkout.DisplayMessage(err))
				continue
			}
			fmt.Println("¡compra exitosa!")
			fmt.Println(ticket)
		case "quit", "exit":
			return
		default:
			fmt.Println("comando desconocido")
		}
	}
	if err := in.Err(); err != nil {
		log.Fatalf("stdin: %v", err)
	}
}

func prompt(w *checkout.Wizard) {
	fmt.Printf("[%s] > ", w.Step())
}

// printBoard renders the grid 8 seats per row: plain numbers are free,
// *n* selected, [n] occupied.
func printBoard(b *board.Board) {
	for i, s := range b.Seats() {
		switch s.State {
		case model.SeatOccupied:
			fmt.Printf("[%2d] ", s.Number)
		case model.SeatSelected:
			fmt.Printf("*%2d* ", s.Number)
		default:
			fmt.Printf(" %2d  ", s.Number)
		}
		if (i+1)%8 == 0 {
			fmt.Println()
		}
	}
}

// readCard prompts for the card fields one at a time.
func readCard(in *bufio.Scanner) model.PaymentData {
	read := func(label string) string {
		fmt.Printf("%s: ", label)
		if !in.Scan() {
			return ""
		}
		return in.Text()
	}
	return model.PaymentData{
		CardNumber: read("número de tarjeta"),
		CardName:   read("nombre"),
		CardExpiry: read("vencimiento (MM/YY)"),
		CardCVV:    read("cvv"),
	}
}
