package pipeline

// Style is a set of CSS declarations keyed by property name.
type Style map[string]any

// Descriptor is a view descriptor: an optional CSS class and an inline style.
type Descriptor struct {
	Class string `json:"class,omitempty" yaml:"class,omitempty"`
	Style Style  `json:"style" yaml:"style"`
}

// Config is the full pipeline configuration for the application.
type Config struct {
	Target  BrowserApp    `json:"target" yaml:"target"`
	Publish PublishConfig `json:"publishConfig" yaml:"publishConfig"`
}

// BrowserApp describes an application hosted in the browser.
type BrowserApp struct {
	DisplayName string    `json:"displayName" yaml:"displayName"`
	Execution   Execution `json:"execution" yaml:"execution"`
	Links       []Link    `json:"links" yaml:"links"`
	Graphics    Graphics  `json:"graphics" yaml:"graphics"`
}

// Execution controls how the application is launched.
type Execution struct {
	Standalone   bool       `json:"standalone" yaml:"standalone"`
	Parametrized []OpenWith `json:"parametrized" yaml:"parametrized"`
}

// OpenWith associates the application with assets. Match is a predicate
// expression evaluated by the pipeline host; Parameters maps launch parameter
// names to asset properties.
type OpenWith struct {
	Match      string            `json:"match" yaml:"match"`
	Parameters map[string]string `json:"parameters" yaml:"parameters"`
}

// Link is a named URL shown alongside the application.
type Link struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Graphics groups the descriptors used to render the application.
type Graphics struct {
	AppIcon    Descriptor `json:"appIcon" yaml:"appIcon"`
	FileIcon   Descriptor `json:"fileIcon" yaml:"fileIcon"`
	Background Descriptor `json:"background" yaml:"background"`
}

// PublishConfig lists what is packaged with the build output.
type PublishConfig struct {
	PackagedFolders []string `json:"packagedFolders" yaml:"packagedFolders"`
}
