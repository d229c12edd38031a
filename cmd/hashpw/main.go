// Command hashpw prints a bcrypt hash for auth.password_hash.
package main

import (
	"fmt"
	"os"

	"status_monitor/internal/logger"
	"status_monitor/internal/service"
)

func main() {
	log := logger.Get(logger.InfoLevel)
	if len(os.Args) != 2 || os.Args[1] == "" {
		log.Fatalw("usage: hashpw <password>")
	}
	hash, err := service.HashPassword(os.Args[1])
	if err != nil {
		log.Fatalw("hash password", "err", err)
	}
	fmt.Println(hash)
}
