package service

import (
	"github.com/adamwrona/rezydent/internal/catalogue"
	"github.com/adamwrona/rezydent/internal/contract"
)

func notFound(what string) contract.Result {
	return contract.Fail(contract.FailureNotFound, "", what+" nie istnieje")
}

func conflict(msg string) contract.Result {
	return contract.Fail(contract.FailureConflict, "", msg)
}

func programYears(p *catalogue.Program) int {
	if p.DurationYears > 0 {
		return p.DurationYears
	}
	return defaultProgramYears
}
