// Command classdump parses a Java class file and prints a summary of
// its constant pool, members, and attributes.
//
// Usage:
//
//	classdump [-json] <file.class>
//	classdump [-json] -jar <archive.jar> <internal/class/Name>
package main

import (
	"flag"
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/jpl-au/mutf8"
	"github.com/jpl-au/mutf8/classfile"
)

type summary struct {
	Name        string   `json:"name"`
	Super       string   `json:"super,omitempty"`
	Version     string   `json:"version"`
	AccessFlags uint16   `json:"access_flags"`
	Fingerprint string   `json:"fingerprint,omitempty"`
	Interfaces  []string `json:"interfaces,omitempty"`
	Fields      []member `json:"fields,omitempty"`
	Methods     []member `json:"methods,omitempty"`
	Constants   int      `json:"constants"`
}

type member struct {
	Name       mutf8.String `json:"name"`
	Descriptor mutf8.String `json:"descriptor"`
	Flags      uint16       `json:"flags"`
}

func main() {
	jsonOut := flag.Bool("json", false, "emit JSON instead of text")
	jarPath := flag.String("jar", "", "read the class from this JAR archive")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: classdump [-json] [-jar archive.jar] <class>")
		os.Exit(2)
	}

	var (
		cf  *classfile.ClassFile
		fp  string
		err error
	)
	if *jarPath != "" {
		var jar *classfile.Jar
		jar, err = classfile.OpenJar(*jarPath)
		if err == nil {
			defer jar.Close()
			var raw []byte
			raw, err = jar.ClassBytes(flag.Arg(0))
			if err == nil {
				fp = classfile.Fingerprint(raw)
				cf, err = classfile.ParseBytes(raw)
			}
		}
	} else {
		var raw []byte
		raw, err = os.ReadFile(flag.Arg(0))
		if err == nil {
			fp = classfile.Fingerprint(raw)
			cf, err = classfile.ParseBytes(raw)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "classdump: %v\n", err)
		os.Exit(1)
	}

	s := buildSummary(cf, fp)
	if *jsonOut {
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "classdump: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}
	printText(s)
}

func buildSummary(cf *classfile.ClassFile, fp string) summary {
	s := summary{
		Version:     fmt.Sprintf("%d.%d", cf.MajorVersion, cf.MinorVersion),
		AccessFlags: cf.AccessFlags,
		Fingerprint: fp,
		Constants:   len(cf.ConstantPool),
	}
	if name, err := cf.Name(); err == nil {
		s.Name = name.UTF8()
	}
	if super, err := cf.SuperName(); err == nil {
		s.Super = super.UTF8()
	}
	for _, idx := range cf.Interfaces {
		if name, err := classfile.ClassNameAt(cf.ConstantPool, idx); err == nil {
			s.Interfaces = append(s.Interfaces, name.UTF8())
		}
	}
	for _, f := range cf.Fields {
		s.Fields = append(s.Fields, member{Name: f.Name, Descriptor: f.Descriptor, Flags: f.AccessFlags})
	}
	for _, m := range cf.Methods {
		s.Methods = append(s.Methods, member{Name: m.Name, Descriptor: m.Descriptor, Flags: m.AccessFlags})
	}
	return s
}

func printText(s summary) {
	fmt.Printf("class %s\n", s.Name)
	if s.Super != "" {
		fmt.Printf("  extends %s\n", s.Super)
	}
	for _, i := range s.Interfaces {
		fmt.Printf("  implements %s\n", i)
	}
	fmt.Printf("  version %s, flags 0x%04x, %d constant pool slots\n", s.Version, s.AccessFlags, s.Constants)
	if s.Fingerprint != "" {
		fmt.Printf("  fingerprint %s\n", s.Fingerprint)
	}
	for _, f := range s.Fields {
		fmt.Printf("  field  %s %s\n", f.Name, f.Descriptor)
	}
	for _, m := range s.Methods {
		fmt.Printf("  method %s %s\n", m.Name, m.Descriptor)
	}
}
