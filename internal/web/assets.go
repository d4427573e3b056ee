package web

import (
	"fmt"
	"net/http"
)

const stylesheet = `:root { --ink: #1b2430; --accent: #14537e; --danger: #a4262c; }
body { margin: 0; font-family: system-ui, sans-serif; color: var(--ink); }
.site-header { display: flex; justify-content: space-between; padding: 1rem 2rem; border-bottom: 1px solid #d8dee6; }
.site-header nav a { margin-left: 1rem; color: var(--accent); text-decoration: none; }
main { max-width: 64rem; margin: 0 auto; padding: 1.5rem 1rem 3rem; }
.hero h1 { font-size: 2rem; }
.flash { padding: .5rem .75rem; border-radius: 4px; }
.flash-success { background: #e3f2e6; }
.flash-error { background: #fbe4e4; }
.data-table { width: 100%; border-collapse: collapse; }
.data-table th, .data-table td { padding: .45rem .6rem; border-bottom: 1px solid #e3e7ec; text-align: left; }
.data-table.is-loading { opacity: .55; }
.row-busy { opacity: .55; }
.badge { padding: .1rem .5rem; border-radius: 9px; font-size: .8rem; background: #e3e7ec; }
.badge-ACTIVE { background: #e3f2e6; }
.badge-DEACTIVE { background: #fbe4e4; }
.table-controls { display: flex; gap: .5rem; margin: .75rem 0; }
.pager { display: flex; gap: .75rem; align-items: center; margin-top: .75rem; }
button.danger { color: var(--danger); }
label { display: block; margin: .6rem 0; }
label input, label select, label textarea { display: block; min-width: 18rem; margin-top: .2rem; }
.stat-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(11rem, 1fr)); gap: .75rem; list-style: none; padding: 0; }
.stat-grid a { display: block; padding: .9rem; border: 1px solid #d8dee6; border-radius: 6px; text-decoration: none; color: inherit; }
.site-footer { padding: 1rem 2rem; border-top: 1px solid #d8dee6; color: #5a6573; }`

func handleStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write([]byte(stylesheet))
}

func formatCents(cents int) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

func formatDuration(seconds int) string {
	if seconds < 3600 {
		return fmt.Sprintf("%dm", seconds/60)
	}
	return fmt.Sprintf("%dh %02dm", seconds/3600, (seconds%3600)/60)
}
