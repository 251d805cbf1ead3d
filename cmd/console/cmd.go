// Package console registers the admin-console command tree.
//
// Every command boots the same DI container, runs one operation
// against the platform admin API and exits ; the signed-in session
// persists between runs through the session store.
package console

import (
	"github.com/suriyadlktech-jpg/Admin-Panel/cmd"
)

func init() {
	cmd.Register(
		loginCMD(),
		logoutCMD(),
		whoamiCMD(),
		recoverCMD(),
		navCMD(),
		profileCMD(),
		adminsCMD(),
		usersCMD(),
		creatorsCMD(),
		feedsCMD(),
		categoriesCMD(),
		plansCMD(),
		reportsCMD(),
		dashboardCMD(),
	)
}
