package parse

import (
	"strings"
	"time"

	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/gitq/model"
)

// remotesPrefix marks remote-tracking refs in `git branch --all` output.
const remotesPrefix = "remotes/"

// TagRefFormat is the --format passed to for-each-ref when enumerating
// tags: short ref name, object type, object name, dereferenced object
// name, tagger name, tagger email, tagger epoch, subject, body.
const TagRefFormat = "--format=%(refname:short)|%(objecttype)|%(objectname)|%(*objectname)|%(taggername)|%(taggeremail)|%(taggerdate:unix)|%(subject)|%(body)"

// tagFieldCount is the fixed column count of a tag enumeration line.
const tagFieldCount = 9

// BranchLine decodes one `git branch -vv --all` line. It returns false for
// lines that are not branch records: empty lines and the symbolic
// "origin/HEAD -> origin/main" pointer annotation.
func BranchLine(line string) (model.Branch, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.Contains(line, "->") {
		return model.Branch{}, false
	}

	isCurrent := strings.HasPrefix(line, "*")
	if isCurrent {
		line = strings.TrimSpace(line[1:])
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return model.Branch{}, false
	}
	name := fields[0]

	kind := model.BranchLocal
	if strings.HasPrefix(name, remotesPrefix) {
		kind = model.BranchRemoteTracking
		name = strings.TrimPrefix(name, remotesPrefix)
	}

	var hash model.Hash
	if len(fields) > 1 {
		hash = model.Hash(fields[1])
	}

	// The bracketed group carries "[upstream: ahead N, behind M]"; only the
	// upstream name before the first colon is kept.
	var upstream string
	if open := strings.IndexByte(line, '['); open >= 0 {
		if end := strings.IndexByte(line, ']'); end > open {
			info := line[open+1 : end]
			upstream = strings.TrimSpace(strings.SplitN(info, ":", 2)[0])
		}
	}

	return model.Branch{
		Name:      name,
		Kind:      kind,
		IsCurrent: isCurrent,
		Hash:      hash,
		Upstream:  upstream,
	}, true
}

// BranchOutput decodes a whole branch enumeration blob. Lines that are not
// branch records are dropped; the query succeeds with a partial collection.
func BranchOutput(blob string) model.BranchList {
	var branches []model.Branch
	for _, line := range splitLines(blob) {
		if branch, ok := BranchLine(line); ok {
			branches = append(branches, branch)
		}
	}
	return model.NewBranchList(branches)
}

// TagLine decodes one for-each-ref tag line of exactly nine pipe-delimited
// columns. For annotated tags (object type "tag") the stored hash is the
// dereferenced target - the commit the tag object points to - and an
// unparsable tagger epoch falls back to the Unix zero epoch: an obviously
// wrong sentinel that makes corrupt metadata visible instead of hiding it
// behind the current time.
func TagLine(line string) (model.Tag, error) {
	parts := strings.Split(line, "|")
	if len(parts) < tagFieldCount {
		return model.Tag{}, errm.Errorf("invalid for-each-ref format: expected %d parts, got %d", tagFieldCount, len(parts))
	}

	var (
		name        = parts[0]
		objectType  = parts[1]
		objectName  = parts[2]
		dereference = parts[3]
		taggerName  = parts[4]
		taggerEmail = parts[5]
		taggerDate  = parts[6]
		subject     = parts[7]
		body        = parts[8]
	)

	tag := model.Tag{Name: name}
	if objectType == "tag" {
		tag.Kind = model.TagAnnotated
		tag.Hash = model.Hash(dereference)
	} else {
		tag.Kind = model.TagLightweight
		tag.Hash = model.Hash(objectName)
	}

	if tag.Kind == model.TagAnnotated {
		if taggerName != "" && taggerEmail != "" {
			when, err := unixTime(taggerDate)
			if err != nil {
				when = time.Unix(0, 0).UTC()
			}
			tag.Tagger = &model.Signature{Name: taggerName, Email: taggerEmail, When: when}
		}
		if subject != "" || body != "" {
			message := subject
			if body != "" {
				message = subject + "\n\n" + body
			}
			tag.Message = strings.TrimSpace(message)
		}
	}

	return tag, nil
}

// TagOutput decodes a whole tag enumeration blob. Lines failing the column
// requirement are dropped; the query succeeds with a partial collection.
func TagOutput(blob string) model.TagList {
	var tags []model.Tag
	for _, line := range splitLines(blob) {
		tag, err := TagLine(line)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	return model.NewTagList(tags)
}
