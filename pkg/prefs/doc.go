/*
Package prefs stores application settings in hierarchical preferences files.

# Quick Start

Open the user preferences of an application, read a value with a default,
change it and save:

	p := prefs.New(types.User, "acme.test", "demo")
	defer p.Close()

	win := prefs.Group(p, "window")
	defer win.Close()

	width, _ := win.GetInt("width", 640)
	win.SetInt("width", width+10)

Closing the last handle on a file writes it if anything changed. Flush
writes earlier.

# Scopes and Flags

types.User and types.System select the per-user or machine-wide directory;
types.Memory keeps the tree in memory only. Or in types.CLocale to write
floats with a '.' decimal point whatever the numeric locale, and
types.Clear to start from an empty tree.

# Groups and Keys

Group paths and keys use '/' as separator. Setters create missing groups,
getters never do:

	p.SetString("recent/File0", "/tmp/a.txt")
	name, ok := p.GetString("recent/File0", "")

Numbered keys are easiest with Name:

	for i, f := range files {
	    p.SetString(prefs.Name("File%d", i), f)
	}

# Environments

Every handle belongs to an Env holding the filesystem, the numeric locale,
the directory resolver, the access policy and the ID registry. DefaultEnv
works on the OS filesystem; tests usually pass their own:

	env := prefs.NewEnv(afero.NewMemMapFs())
	p := prefs.New(types.User, "acme.test", "demo", prefs.WithEnv(env))
*/
package prefs
