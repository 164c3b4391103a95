package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
)

func main() {
	commands := map[string]command{
		"encode": encodeCmd(),
		"plot":   plotCmd(),
		"report": reportCmd(),
		"stream": streamCmd(),
	}

	flag.Usage = func() {
		fmt.Println("Usage: logviewer [globals] <command> [options]")
		for name, cmd := range commands {
			fmt.Printf("\n%s command:\n", name)
			cmd.fs.PrintDefaults()
		}
		fmt.Printf("\nglobal flags:\n  -cpus=%d Number of CPUs to use\n", runtime.NumCPU())
		fmt.Println(examples)
	}

	cpus := flag.Int("cpus", runtime.NumCPU(), "Number of CPUs to use")
	flag.Parse()

	runtime.GOMAXPROCS(*cpus)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	if cmd, ok := commands[args[0]]; !ok {
		log.Fatalf("Unknown command: %s", args[0])
	} else if err := cmd.fn(args[1:]); err != nil {
		log.Fatal(err)
	}
}

const examples = `
examples:
  motor-decoder dump pid.bin | logviewer plot > plot.html
  logviewer encode -to=json samples.bin > samples.json
  logviewer report -type=json samples.bin > metrics.json
  cat samples.json | logviewer stream -prometheus=http://0.0.0.0:8880 -output=report.txt
`

type command struct {
	fs *flag.FlagSet
	fn func(args []string) error
}
