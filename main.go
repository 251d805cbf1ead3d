package main

import (
	"fmt"

	"github.com/suriyadlktech-jpg/Admin-Panel/cmd"

	_ "github.com/suriyadlktech-jpg/Admin-Panel/cmd/console"
)

func main() {
	if err := cmd.Run(); err != nil {
		fmt.Println(err.Error())
		return
	}
}
