package po

import "embed"

const TemplateName = "dash-to-workspaces.pot"

//go:generate sh -c "cd .. && go run ./cmd/dtw-rebuild-locale --template po/dash-to-workspaces.pot"
//go:embed *.pot
var FS embed.FS
