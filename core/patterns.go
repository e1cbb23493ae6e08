package core

import (
	"regexp"

	"github.com/bowen31337/prdscope/schema"
)

// factorPatterns maps each complexity dimension to the regular expressions
// whose match counts feed it. All patterns run case-insensitively against
// the combined lower-cased document text.
var factorPatterns = map[schema.FactorKey][]string{
	schema.FactorFunctionalRequirements: {
		`(?:must|shall|should|will)\s+(?:be able to|allow|enable|support)`,
		`FR-\d+`,
		`requirement[s]?\s*:`,
		`(?:user|system)\s+(?:can|will|should)`,
	},
	schema.FactorIntegrationPoints: {
		`integrat(?:e|ion|ing)\s+with`,
		`connect(?:s|ing)?\s+to`,
		`(?:third[- ]party|external)\s+(?:service|system|api)`,
		`webhook[s]?`,
		`(?:import|export)\s+(?:from|to)`,
	},
	schema.FactorUIComponents: {
		`(?:button|form|modal|dialog|dropdown|menu|table|list|card|panel)`,
		`(?:page|screen|view|component|widget)`,
		`(?:display|show|render|present)`,
		`UI/UX`,
		`(?:click|tap|hover|drag|drop)`,
	},
	schema.FactorDatabaseChanges: {
		`(?:database|db|schema|table|column|field|migration)`,
		`(?:create|update|delete|insert)\s+(?:table|record|row)`,
		`(?:sql|query|index)`,
		`(?:foreign key|primary key|constraint)`,
	},
	schema.FactorExternalAPIs: {
		`(?:api|endpoint|rest|graphql|grpc)`,
		`(?:http|https)\s*://`,
		`(?:get|post|put|patch|delete)\s+(?:request|endpoint)`,
		`(?:oauth|api[- ]key|token)`,
	},
	schema.FactorAuthenticationFeatures: {
		`(?:auth|login|logout|signin|signout|signup)`,
		`(?:password|credential|session|jwt|token)`,
		`(?:permission|role|access control|rbac)`,
		`(?:mfa|2fa|two[- ]factor)`,
	},
	schema.FactorFileOperations: {
		`(?:upload|download|file|attachment|document)`,
		`(?:storage|s3|blob|bucket)`,
		`(?:image|video|audio|media)`,
	},
	schema.FactorRealTimeFeatures: {
		`(?:real[- ]time|live|streaming|websocket)`,
		`(?:notification|push|alert)`,
		`(?:sync|synchroniz)`,
	},
}

// compiledPatterns is the compiled form of factorPatterns, built once at
// package load so a bad pattern fails fast instead of mid-analysis.
var compiledPatterns = compileFactorPatterns()

func compileFactorPatterns() map[schema.FactorKey][]*regexp.Regexp {
	compiled := make(map[schema.FactorKey][]*regexp.Regexp, len(factorPatterns))
	for key, exprs := range factorPatterns {
		regexps := make([]*regexp.Regexp, len(exprs))
		for i, expr := range exprs {
			regexps[i] = regexp.MustCompile("(?i)" + expr)
		}
		compiled[key] = regexps
	}
	return compiled
}
