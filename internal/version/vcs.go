// Copyright 2022 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package version

import (
	"runtime/debug"
	"time"
)

const (
	govcsTimeLayout = "2006-01-02T15:04:05Z"
	ourTimeLayout   = "20060102"
)

// These variables are set at build-time by the linker, e.g.
//
//	go build -ldflags "-X github.com/sunyihoo/ethabi/internal/version.gitCommit=..."
//
// 这些变量在构建时通过链接器 -X 参数设置，优先于 go 工具嵌入的 VCS 信息。
var gitCommit, gitDate string

// VCSInfo represents the git repository state.
// VCSInfo 表示 git 仓库的状态。
type VCSInfo struct {
	Commit string // head commit hash
	Date   string // commit time in YYYYMMDD format
	Dirty  bool
}

// String returns the short form used in version output: the first eight
// characters of the commit, the date, and a marker for uncommitted changes.
func (v VCSInfo) String() string {
	s := v.Commit
	if len(s) > 8 {
		s = s[:8]
	}
	if v.Date != "" {
		s += "-" + v.Date
	}
	if v.Dirty {
		s += " (dirty)"
	}
	return s
}

// VCS returns version control information of the current executable.
// Linker supplied values win over the VCS stamp embedded by the go tool.
// VCS 返回当前可执行文件的版本控制信息。
func VCS() (VCSInfo, bool) {
	if gitCommit != "" {
		return VCSInfo{Commit: gitCommit, Date: gitDate}, true
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok && buildInfo.Main.Path == ourPath {
		return buildInfoVCS(buildInfo)
	}
	return VCSInfo{}, false
}

// buildInfoVCS extracts the vcs.* settings of a build. Both the revision and
// the commit time must be present.
func buildInfoVCS(info *debug.BuildInfo) (s VCSInfo, ok bool) {
	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			s.Commit = v.Value
		case "vcs.modified":
			s.Dirty = v.Value == "true"
		case "vcs.time":
			if t, err := time.Parse(govcsTimeLayout, v.Value); err == nil {
				s.Date = t.Format(ourTimeLayout)
			}
		}
	}
	return s, s.Commit != "" && s.Date != ""
}
