/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/hydrodyn/goswe/InputParameters"
	"github.com/hydrodyn/goswe/model_problems/SWE1D"
	"github.com/hydrodyn/goswe/utils"
)

// SweCmd represents the swe command
var SweCmd = &cobra.Command{
	Use:   "swe",
	Short: "One dimensional shallow water solver on a periodic domain",
	Long: `
Runs the 1D shallow water equations with a selected space scheme
(central, upwind, weno5) and time integrator (euler, rk2, rk3, rk4),

goswe swe -s weno5 -i rk4 -c rocks`,
	Run: func(cmd *cobra.Command, args []string) {
		msw := &ModelSWE{}
		fmt.Println("swe called")
		scheme, _ := cmd.Flags().GetString("scheme")
		msw.Scheme = SWE1D.NewSchemeType(scheme)
		integrator, _ := cmd.Flags().GetString("integrator")
		msw.Integrator = SWE1D.NewIntegratorType(integrator)
		caseLabel, _ := cmd.Flags().GetString("case")
		msw.Case = SWE1D.NewCaseType(caseLabel)
		msw.K, _ = cmd.Flags().GetInt("k")
		msw.FPS, _ = cmd.Flags().GetInt("fps")
		msw.XLength, _ = cmd.Flags().GetFloat64("xLength")
		msw.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
		msw.CFL, _ = cmd.Flags().GetFloat64("CFL")
		msw.Gravity, _ = cmd.Flags().GetFloat64("gravity")
		msw.ParallelDegree, _ = cmd.Flags().GetInt("parallel")
		msw.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		msw.OutputFile, _ = cmd.Flags().GetString("output")
		msw.Graph, _ = cmd.Flags().GetBool("graph")
		msw.Ascii, _ = cmd.Flags().GetBool("ascii")
		msw.Perf, _ = cmd.Flags().GetBool("perf")
		msw.Profile, _ = cmd.Flags().GetBool("profile")
		dr, _ := cmd.Flags().GetInt("delay")
		msw.Delay = time.Duration(dr) * time.Millisecond
		if !cmd.Flags().Changed("CFL") {
			msw.CFL = def_CFL[msw.Scheme]
		}
		msw.CFL = LimitCFL(msw.Scheme, msw.CFL)
		ip := processInput(msw)
		RunSWE(msw, ip)
	},
}

func init() {
	rootCmd.AddCommand(SweCmd)
	var (
		K         = 100
		FPS       = 20
		XLength   = 20.0
		FinalTime = 10.0
	)
	SweCmd.Flags().StringP("scheme", "s", "weno5", "space scheme: central, upwind or weno5")
	SweCmd.Flags().StringP("integrator", "i", "rk4", "time integrator: euler, rk2, rk3 or rk4")
	SweCmd.Flags().StringP("case", "c", "rocks", "initial condition: gaussian, dambreak, wave or rocks")
	SweCmd.Flags().IntP("k", "k", K, "Number of grid nodes in model")
	SweCmd.Flags().Int("fps", FPS, "output frame cadence - one snapshot every 1/FPS seconds")
	SweCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	SweCmd.Flags().Int("parallel", 1, "number of goroutines for the WENO5 reconstruction")
	SweCmd.Flags().Float64("CFL", def_CFL[SWE1D.WENO5], "CFL - increase for speedup, decrease for stability")
	SweCmd.Flags().Float64("finalTime", FinalTime, "FinalTime - the target end time for the sim")
	SweCmd.Flags().Float64("xLength", XLength, "periodic domain length, centered on x = 0")
	SweCmd.Flags().Float64("gravity", 9.80665, "gravitational constant g")
	SweCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- CFL\n\t- SpaceScheme")
	SweCmd.Flags().StringP("output", "o", "", "write snapshots as three column rows (h x t) to this file")
	SweCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	SweCmd.Flags().Bool("ascii", false, "render the final height profile in the terminal")
	SweCmd.Flags().Bool("perf", false, "report kernel instruction/cycle counts for one RHS evaluation (linux)")
	SweCmd.Flags().Bool("profile", false, "write a cpu profile of the run")
}

type ModelSWE struct {
	K, FPS                      int
	ParallelDegree              int
	Delay                       time.Duration
	Scheme                      SWE1D.SchemeType
	Integrator                  SWE1D.IntegratorType
	Case                        SWE1D.CaseType
	CFL, FinalTime, XLength     float64
	Gravity                     float64
	ICFile, OutputFile          string
	Graph, Ascii, Perf, Profile bool
}

var (
	max_CFL = []float64{0.10, 0.10, 0.10}
	def_CFL = []float64{0.05, 0.10, 0.10}
)

type Model interface {
	Run(graph bool, graphDelay ...time.Duration)
}

func processInput(msw *ModelSWE) (ip *InputParameters.InputParameters1D) {
	var (
		err error
	)
	if len(msw.ICFile) == 0 {
		return
	}
	var data []byte
	if data, err = ioutil.ReadFile(msw.ICFile); err != nil {
		exampleFile := `
########################################
Title: "Hitting Rocks"
CFL: 0.1
SpaceScheme: weno5
TimeScheme: rk4
InitType: rocks # Can be "gaussian", "dambreak", "wave"
FinalTime: 10
DomainLength: 20
NodeCount: 100
FPS: 20
Gravity: 9.80665
########################################
`
		fmt.Printf("error: %s\n", err.Error())
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	ip = &InputParameters.InputParameters1D{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	ip.Print()
	if ip.CFL != 0 {
		msw.CFL = LimitCFL(msw.Scheme, ip.CFL)
	}
	if len(ip.SpaceScheme) != 0 {
		msw.Scheme = SWE1D.NewSchemeType(ip.SpaceScheme)
	}
	if len(ip.TimeScheme) != 0 {
		msw.Integrator = SWE1D.NewIntegratorType(ip.TimeScheme)
	}
	if len(ip.InitType) != 0 {
		msw.Case = SWE1D.NewCaseType(ip.InitType)
	}
	if ip.FinalTime != 0 {
		msw.FinalTime = ip.FinalTime
	}
	if ip.DomainLength != 0 {
		msw.XLength = ip.DomainLength
	}
	if ip.NodeCount != 0 {
		msw.K = ip.NodeCount
	}
	if ip.FPS != 0 {
		msw.FPS = ip.FPS
	}
	if ip.Gravity != 0 {
		msw.Gravity = ip.Gravity
	}
	return
}

func RunSWE(msw *ModelSWE, ip *InputParameters.InputParameters1D) {
	var (
		err error
		sw  *SWE1D.SWE
	)
	if msw.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	if sw, err = SWE1D.NewSWE(msw.CFL, msw.FinalTime, msw.XLength, msw.Gravity,
		msw.K, msw.FPS, msw.Integrator, msw.Scheme, msw.Case, msw.ParallelDegree); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if ip != nil && len(ip.OutputTimes) != 0 {
		if err = sw.SetOutputTimes(ip.OutputTimes); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	}
	if len(msw.OutputFile) != 0 {
		var f *os.File
		if f, err = os.Create(msw.OutputFile); err != nil {
			panic(err)
		}
		defer f.Close()
		sw.Writer = SWE1D.NewSolutionWriter(f)
	}
	if msw.Perf {
		instructions, cycles, err := utils.KernelCounts(func() error {
			sw.SD.FluxDivergence(sw.Q)
			return nil
		})
		if err != nil {
			fmt.Printf("perf counters unavailable: %s\n", err.Error())
		} else {
			fmt.Printf("RHS evaluation: %d instructions, %d cycles\n", instructions, cycles)
		}
	}
	var C Model = sw
	C.Run(msw.Graph, msw.Delay)
	if msw.Ascii {
		graph := asciigraph.Plot(sw.Q.Data()[:sw.Grid.K],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("h(x) at t = %.4f", sw.Time)),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	fmt.Printf("Run complete: %s\n", utils.GetMemUsage())
}

func LimitCFL(scheme SWE1D.SchemeType, CFL float64) (CFLNew float64) {
	var (
		CFLMax float64
	)
	CFLMax = max_CFL[scheme]
	if CFL > CFLMax {
		fmt.Printf("Input CFL is higher than max CFL for this method\nReplacing with Max CFL: %8.2f\n", CFLMax)
		return CFLMax
	}
	return CFL
}

func Defaults(scheme SWE1D.SchemeType) (CFL float64) {
	return def_CFL[scheme]
}
