package cli

import (
	"fmt"

	"github.com/diillson/lease-exit-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
        /$$                                                 /$$$$$$$$           /$$   /$$    
       | $$                                                | $$_____/          |__/  | $$    
       | $$        /$$$$$$   /$$$$$$   /$$$$$$$  /$$$$$$   | $$       /$$   /$$ /$$ /$$$$$$  
       | $$       /$$__  $$ |____  $$ /$$_____/ /$$__  $$  | $$$$$   |  $$ /$$/| $$|_  $$_/  
       | $$      | $$$$$$$$  /$$$$$$$|  $$$$$$ | $$$$$$$$  | $$__/    \  $$$$/ | $$  | $$    
       | $$      | $$_____/ /$$__  $$ \____  $$| $$_____/  | $$        >$$  $$ | $$  | $$ /$$
       | $$$$$$$$|  $$$$$$$|  $$$$$$$ /$$$$$$$/|  $$$$$$$  | $$$$$$$$ /$$/\  $$| $$  |  $$$$/
       |________/ \_______/ \_______/|_______/  \_______/  |________/|__/  \__/|__/   \___/  
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Lease Exit CLI (v%s)", formattedVersion)))
}
