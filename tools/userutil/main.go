package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sigmafes/sigsnakes/internal/accounts"
	"github.com/sigmafes/sigsnakes/internal/domain"
)

// Утилита оператора для users.json. Сервер при этом должен быть
// остановлен: файл перезаписывается целиком.
func main() {
	if len(os.Args) < 3 {
		printHelp()
		return
	}

	store := accounts.NewStore(os.Args[1])

	switch os.Args[2] {
	case "list":
		fmt.Printf("%d account(s)\n", store.Count())
		for _, acc := range store.All() {
			fmt.Printf("  %-16s apples=%-6d role=%-9s colors=%d shapes=%d\n",
				acc.Username, acc.Apples, acc.EffectiveRole(),
				len(acc.OwnedColors), len(acc.OwnedShapes))
		}
	case "promote":
		if len(os.Args) < 4 {
			fmt.Println("Usage: userutil <users.json> promote <username>")
			return
		}
		if err := store.SetRole(os.Args[3], domain.RoleModerator); err != nil {
			fmt.Printf("Cannot promote: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s is now a moderator\n", os.Args[3])
	case "demote":
		if len(os.Args) < 4 {
			fmt.Println("Usage: userutil <users.json> demote <username>")
			return
		}
		if err := store.SetRole(os.Args[3], domain.RolePlayer); err != nil {
			fmt.Printf("Cannot demote: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s is now a regular player\n", os.Args[3])
	case "set-apples":
		if len(os.Args) < 5 {
			fmt.Println("Usage: userutil <users.json> set-apples <username> <n>")
			return
		}
		n, err := strconv.Atoi(os.Args[4])
		if err != nil || n < 0 {
			fmt.Printf("Invalid apple count: %s\n", os.Args[4])
			return
		}
		if err := store.SaveScore(os.Args[3], n); err != nil {
			fmt.Printf("Cannot set apples: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s now has %d apples\n", os.Args[3], n)
	default:
		printHelp()
	}
}

func printHelp() {
	fmt.Println(`User Utility - управление учетными записями игроков
Usage: userutil <users.json> <command>
Commands:
  list                      - список аккаунтов
  promote <username>        - выдать права модератора
  demote <username>         - забрать права модератора
  set-apples <username> <n> - выставить счет яблок`)
}
