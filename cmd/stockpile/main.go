package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/fulldump/stockpile/bootstrap"
	"github.com/fulldump/stockpile/configuration"
)

var banner = `
 _____ _             _          _ _
/  ___| |           | |        (_) |
\ ` + "`" + `--.| |_ ___   ___| | ___ __  _| | ___
 ` + "`" + `--. \ __/ _ \ / __| |/ / '_ \| | |/ _ \
/\__/ / || (_) | (__|   <| |_) | | |  __/
\____/ \__\___/ \___|_|\_\ .__/|_|_|\___|
                         | |
                         |_|     version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	start, _ := bootstrap.Bootstrap(&c)
	start()
}
