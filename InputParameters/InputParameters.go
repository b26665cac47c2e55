package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title        string    `yaml:"Title"`
	CFL          float64   `yaml:"CFL"`
	SpaceScheme  string    `yaml:"SpaceScheme"`
	TimeScheme   string    `yaml:"TimeScheme"`
	InitType     string    `yaml:"InitType"`
	FinalTime    float64   `yaml:"FinalTime"`
	DomainLength float64   `yaml:"DomainLength"`
	NodeCount    int       `yaml:"NodeCount"`
	FPS          int       `yaml:"FPS"`
	Gravity      float64   `yaml:"Gravity"`
	OutputTimes  []float64 `yaml:"OutputTimes"` // Optional, overrides the FPS cadence
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("%8.5f\t\t= DomainLength\n", ip.DomainLength)
	fmt.Printf("%8.5f\t\t= Gravity\n", ip.Gravity)
	fmt.Printf("[%s]\t\t\t= Space Scheme\n", ip.SpaceScheme)
	fmt.Printf("[%s]\t\t\t= Time Scheme\n", ip.TimeScheme)
	fmt.Printf("[%s]\t= InitType\n", ip.InitType)
	fmt.Printf("[%d]\t\t\t\t= Node Count\n", ip.NodeCount)
	fmt.Printf("[%d]\t\t\t\t= FPS\n", ip.FPS)
	if len(ip.OutputTimes) != 0 {
		fmt.Printf("OutputTimes = %v\n", ip.OutputTimes)
	}
}
