package command

import (
	"fmt"
	"io"
	"sort"
	"strings"

	log15 "gopkg.in/inconshreveable/log15.v2"

	"lengthconverter/config"
	"lengthconverter/metrics"
)

// Core holds the environment passed to each command handler
type Core struct {
	Config  *config.Config
	Logger  log15.Logger
	Metrics *metrics.Metrics
}

// Command represents a single command the converter will handle
type Command struct {
	Name        string
	Description string
	Usage       string
	Run         Func
}

// Func represents the Go function that will be executed when a command triggers.
// Replies are written to w.
type Func func(w io.Writer, args []string)

// List holds the command list and prefix
type List struct {
	Prefix   string
	Commands map[string]Command
	Logger   log15.Logger
	Metrics  *metrics.Metrics
}

// NewList returns an empty command list
func NewList(prefix string, logger log15.Logger, m *metrics.Metrics) *List {
	return &List{
		Prefix:   prefix,
		Commands: make(map[string]Command),
		Logger:   logger,
		Metrics:  m,
	}
}

// AddCommand adds a command to the internal list
func (cl *List) AddCommand(c Command) {
	cl.Commands[c.Name] = c
}

// Process handles one line of input. The prefix is optional; an empty line does nothing.
func (cl *List) Process(w io.Writer, line string) {
	line = strings.TrimPrefix(strings.TrimSpace(line), cl.Prefix)
	parts := strings.Fields(line)
	if len(parts) < 1 {
		return
	}

	commandName := strings.ToLower(parts[0])
	cmd, exists := cl.Commands[commandName]

	if !exists {
		if commandName == "help" {
			cl.handleHelpCommand(w, parts)
		} else {
			fmt.Fprintf(w, "Commande inconnue: %s\n", parts[0])
			fmt.Fprintf(w, "Tapez %shelp pour la liste des commandes\n", cl.Prefix)
		}
		return
	}

	if cl.Logger != nil {
		cl.Logger.Debug("executing", "cmd", commandName, "args", parts[1:])
	}
	if cl.Metrics != nil {
		cl.Metrics.IncCommandsExecuted()
	}

	var args []string
	if len(parts) > 1 {
		args = parts[1:]
	}
	cmd.Run(w, args)
}

func (cl *List) handleHelpCommand(w io.Writer, parts []string) {
	if len(parts) < 2 {
		cl.showAllCommands(w)
	} else {
		cl.showSpecificCommand(w, parts[1])
	}
}

func (cl *List) showAllCommands(w io.Writer) {
	names := make([]string, 0, len(cl.Commands))
	for name := range cl.Commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "Voici ce que je peux faire:")
	fmt.Fprintln(w, strings.Join(names, ", "))
	if cl.Prefix != "" {
		fmt.Fprintf(w, "Le préfixe de toutes ces commandes est: \"%s\"\n", cl.Prefix)
	}
	fmt.Fprintf(w, "Tapez %shelp <commande> pour plus de détails\n", cl.Prefix)
}

func (cl *List) showSpecificCommand(w io.Writer, cmdName string) {
	cmd, exists := cl.Commands[strings.ToLower(cmdName)]
	if exists {
		fmt.Fprintf(w, "%s: %s\n", cmd.Description, cmd.Usage)
	} else {
		fmt.Fprintf(w, "Commande inconnue: %s\n", cmdName)
	}
}

// logger returns core's logger, or one that discards everything when unset
func (core Core) logger() log15.Logger {
	if core.Logger != nil {
		return core.Logger
	}
	l := log15.New()
	l.SetHandler(log15.DiscardHandler())
	return l
}

// Commands returns the commands served by core
func (core Core) Commands() []Command {
	return []Command{
		{
			Name:        "convert",
			Description: "Effectue une conversion d'une longueur d'une unité à une autre 'convert <valeur> <unité d'origine> <unité voulue>'",
			Usage:       "convert 400 feets m, convert pour la liste des unités connues",
			Run:         core.ConvertUnits,
		},
		{
			Name:        "units",
			Description: "Affiche les unités connues",
			Usage:       "units",
			Run:         core.ShowKnownUnits,
		},
		{
			Name:        "stats",
			Description: "Affiche les compteurs du convertisseur au format Prometheus",
			Usage:       "stats",
			Run:         core.ShowStats,
		},
		{
			Name:        "version",
			Description: "Affiche la version du convertisseur",
			Usage:       "version",
			Run:         core.ShowVersion,
		},
	}
}
