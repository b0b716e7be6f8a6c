package entities

import (
	"encoding/xml"
	"fmt"
)

// POM is the subset of a Maven project descriptor the verifiers inspect.
// Optional elements are pointers so a missing node can be told apart from a
// blank one.
type POM struct {
	XMLName    xml.Name       `xml:"project"`
	ArtifactID *string        `xml:"artifactId"`
	Name       *string        `xml:"name"`
	Parent     *POMParent     `xml:"parent"`
	Properties *POMProperties `xml:"properties"`
	Licenses   []POMLicense   `xml:"licenses>license"`
}

// POMParent is the parent descriptor reference.
type POMParent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

// POMProperties carries the property overrides the verifiers look at.
type POMProperties struct {
	JenkinsVersion string `xml:"jenkins.version"`
}

// POMLicense is one entry of the <licenses> section.
type POMLicense struct {
	Name string `xml:"name"`
	URL  string `xml:"url"`
}

// ParsePOM decodes a pom.xml document. The descriptor is parsed fresh on
// every run, nothing is cached.
func ParsePOM(data []byte) (*POM, error) {
	var pom POM
	if err := xml.Unmarshal(data, &pom); err != nil {
		return nil, fmt.Errorf("failed to parse pom.xml: %w", err)
	}
	return &pom, nil
}
