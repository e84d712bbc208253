// Package all registers every built-in framework adapter. Import it for
// side effects:
//
//	import _ "github.com/hamlet-dev/hamlet/pkg/adapters/all"
package all

import (
	_ "github.com/hamlet-dev/hamlet/pkg/adapters/cypress"
	_ "github.com/hamlet-dev/hamlet/pkg/adapters/jasmine"
	_ "github.com/hamlet-dev/hamlet/pkg/adapters/jest"
	_ "github.com/hamlet-dev/hamlet/pkg/adapters/junit5"
	_ "github.com/hamlet-dev/hamlet/pkg/adapters/mocha"
	_ "github.com/hamlet-dev/hamlet/pkg/adapters/playwright"
	_ "github.com/hamlet-dev/hamlet/pkg/adapters/puppeteer"
	_ "github.com/hamlet-dev/hamlet/pkg/adapters/selenium"
	_ "github.com/hamlet-dev/hamlet/pkg/adapters/testcafe"
	_ "github.com/hamlet-dev/hamlet/pkg/adapters/vitest"
	_ "github.com/hamlet-dev/hamlet/pkg/adapters/webdriverio"
)
