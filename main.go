package main

import "github.com/frahmantamala/company-management/cmd"

func main() {
	cmd.Execute()
}
