package report

import (
	"fmt"

	"github.com/joacominatel/accessdbcheck/internal/config"
)

// Install hints printed when a binding is not compiled into the binary.
var installHints = map[string][]string{
	config.DriverODBC: {
		"Install the unixODBC development headers and rebuild with the odbc tag:",
		"   sudo yum install -y unixODBC-devel",
		"   go build -tags odbc ./cmd/accessdbcheck",
	},
}

// DriverMissing reports that the named database/sql binding is unavailable.
func (p *Printer) DriverMissing(driver string) {
	p.println(p.theme.err.Render(fmt.Sprintf("ERROR: %s driver binding not available in this build", driver)))
	hint, ok := installHints[driver]
	if !ok {
		p.printf("Please use a build that registers the %q database/sql driver\n", driver)
		return
	}
	for _, line := range hint {
		p.println(line)
	}
}

// RemediationGuide explains how to install the Microsoft ODBC driver on
// RHEL. example must already be masked.
func (p *Printer) RemediationGuide(example string) {
	p.println()
	p.println(p.theme.err.Render("ERROR: SQL Server ODBC driver not found or not properly configured."))
	p.println("You need to install the Microsoft ODBC driver for SQL Server on your RHEL system:")
	p.println()
	p.println(p.theme.title.Render("1. Register Microsoft repository:"))
	p.println("   sudo curl https://packages.microsoft.com/config/rhel/8/prod.repo > /etc/yum.repos.d/mssql-release.repo")
	p.println()
	p.println(p.theme.title.Render("2. Install the driver:"))
	p.println("   sudo yum install -y msodbcsql17")
	p.println("   (Accept the license terms when prompted)")
	p.println()
	p.println(p.theme.title.Render("3. Install the development package if needed:"))
	p.println("   sudo yum install -y unixODBC-devel")
	p.println()
	p.println("After installation, try this modified connection string:")
	p.println("   " + example)
}
