package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/pkg"
)

// prints a bcrypt hash usable as FITTRACK_ADMIN_PASSWORD_HASH
func main() {
	password := flag.String("password", "", "admin password to hash (read from stdin when empty)")
	flag.Parse()

	pass := *password
	if pass == "" {
		fmt.Fprint(os.Stderr, "password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			log.Fatalf("read password: %s", err)
		}
		pass = strings.TrimSpace(line)
	}

	if pass == "" {
		log.Fatalln("empty password")
	}

	hash, err := pkg.HashPassword(pass)
	if err != nil {
		log.Fatalf("hash password: %s", err)
	}

	fmt.Println(hash)
}
