package main

import "github.com/rdelacruz/payroll-management/cmd"

func main() {
	cmd.Execute()
}
