// Command isupportdump connects to an IRC server, collects its ISUPPORT
// advertisement into a capability table, prints the derived protocol view,
// and disconnects.
package main

import (
	"crypto/tls"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ergochat/irc-go/ircevent"
	"github.com/ergochat/irc-go/ircmsg"
	"github.com/joho/godotenv"

	"github.com/opalirc/irctk/isupport"
)

func main() {
	configPath := flag.String("c", "", "Path to YAML configuration file (optional)")
	flag.Parse()

	// Environment variables (optionally from .env) fill anything the config
	// file leaves unset.
	_ = godotenv.Load()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	table := isupport.NewTable()

	conn := &ircevent.Connection{
		Server:    fmt.Sprintf("%s:%d", cfg.Server, cfg.Port),
		Nick:      cfg.Nick,
		User:      cfg.Username,
		RealName:  cfg.Realname,
		UseTLS:    cfg.UseTLS,
		TLSConfig: &tls.Config{ServerName: cfg.Server},
		Debug:     false,
	}

	conn.AddCallback("005", func(e ircmsg.Message) {
		// Params[0] is our nick, the last param is the "are supported by
		// this server" trailer.
		if len(e.Params) < 3 {
			return
		}
		for _, token := range e.Params[1 : len(e.Params)-1] {
			op, err := isupport.ParseToken(token)
			if err != nil {
				log.Printf("Skipping token %q: %v", token, err)
				continue
			}
			table.Apply(op)
		}
	})

	// End of MOTD (or no MOTD) means the 005 burst is over.
	done := func(e ircmsg.Message) {
		dump(table)
		conn.Quit()
	}
	conn.AddCallback("376", done)
	conn.AddCallback("422", done)

	log.Printf("Connecting to %s...", conn.Server)
	if err := conn.Connect(); err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	conn.Loop()
}

func dump(table isupport.Table) {
	fmt.Printf("capabilities stored: %d\n", len(table))
	fmt.Printf("casemapping:         %s\n", table.CaseMapOrDefault())
	fmt.Printf("channel types:       %s\n", string(table.ChanTypesOrDefault()))

	if limit, limited := table.ModeLimitOrDefault(); limited {
		fmt.Printf("mode changes/cmd:    %d\n", limit)
	} else {
		fmt.Printf("mode changes/cmd:    unlimited\n")
	}

	for _, group := range table.ChanModesOrDefault() {
		fmt.Printf("type %c modes:        %s (%s)\n", group.Kind, group.Modes, group)
	}

	for _, pm := range table.PrefixOrDefault() {
		fmt.Printf("membership prefix:   %c (mode %c)\n", pm.Prefix, pm.Mode)
	}

	for _, command := range []string{"PRIVMSG", "NOTICE", "JOIN", "WHOIS"} {
		if limit, ok := table.TargetLimit(command); ok {
			fmt.Printf("%-8s target max:  %d\n", command, limit)
		}
	}

	if p, ok := table.Get(isupport.KindChatHistory); ok {
		if max, ok := p.(isupport.ChatHistory); ok {
			fmt.Printf("chathistory page:    %d\n", uint16(max))
		}
	}
	if _, ok := table.Get(isupport.KindWhoX); ok {
		fmt.Printf("whox:                supported\n")
	}

	nick := os.Getenv("IRC_NICK")
	if nick != "" {
		fmt.Printf("normalized nick:     %s\n", table.CaseMapOrDefault().Normalize(nick))
	}
}
