package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"os"
	"strconv"

	"github.com/0x0FACED/go-trimesh/pkg/logger"
	"github.com/0x0FACED/go-trimesh/pkg/mesh"
	"github.com/0x0FACED/go-trimesh/pkg/meshgen"
	"github.com/0x0FACED/go-trimesh/pkg/meshio"
	"github.com/0x0FACED/go-trimesh/static"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"
)

// maxDrawnEdges caps the per-edge line overlays on the chart.
const maxDrawnEdges = 1500

// Upper bounds on the mesh size a request may ask for.
const (
	maxGridSide = 200
	maxCells    = 128
)

type params struct {
	Source   string
	Rows     int
	Cols     int
	Scramble int
	Seed     int64
	Cells    int
}

func defaultParams() params {
	return params{Source: "grid", Rows: 8, Cols: 8, Scramble: 30, Seed: 1, Cells: 16}
}

func atoiOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// parseParams reads the form, keeping the default for every missing or
// malformed field.
func parseParams(r *http.Request) params {
	p := defaultParams()
	if r.Method != http.MethodPost {
		return p
	}
	if err := r.ParseForm(); err != nil {
		return p
	}
	if s := r.FormValue("source"); s != "" {
		p.Source = s
	}
	p.Rows = atoiOr(r.FormValue("rows"), p.Rows)
	p.Cols = atoiOr(r.FormValue("cols"), p.Cols)
	p.Scramble = atoiOr(r.FormValue("scramble"), p.Scramble)
	p.Seed = int64(atoiOr(r.FormValue("seed"), int(p.Seed)))
	p.Cells = atoiOr(r.FormValue("cells"), p.Cells)

	p.Rows = min(max(p.Rows, 1), maxGridSide)
	p.Cols = min(max(p.Cols, 1), maxGridSide)
	p.Cells = min(max(p.Cells, 2), maxCells)
	p.Scramble = min(max(p.Scramble, 0), 100)
	return p
}

type server struct {
	modelPath string
}

// source produces the index and coordinate buffers for p, with the
// requested share of triangles turned around.
func (s *server) source(p params) ([]uint32, []float64, error) {
	var (
		indices []uint32
		points  []float64
		err     error
	)
	switch p.Source {
	case "grid":
		indices, points = meshgen.Grid(p.Rows, p.Cols)
	case "sphere":
		indices, points, err = meshgen.Sphere(1, p.Cells)
	case "model":
		if s.modelPath == "" {
			return nil, nil, errors.New("no model given, start the server with -model")
		}
		var b *meshio.Buffers
		b, err = meshio.LoadGLTF(s.modelPath)
		if b != nil {
			indices, points = b.Indices, b.Points
		}
	default:
		return nil, nil, fmt.Errorf("unknown source %q", p.Source)
	}
	if err != nil {
		return nil, nil, err
	}

	rng := rand.New(rand.NewSource(p.Seed))
	return meshgen.Scramble(indices, float64(p.Scramble)/100, rng), points, nil
}

type summary struct {
	rows [][2]string
}

func (s *summary) add(name string, v any) {
	s.rows = append(s.rows, [2]string{name, fmt.Sprint(v)})
}

func (s *summary) html() string {
	out := `<table class="summary">`
	for _, r := range s.rows {
		out += "<tr><td>" + r[0] + "</td><td>" + r[1] + "</td></tr>"
	}
	return out + "</table>"
}

// inspect builds the mesh, runs every check and the Laplacian assemblies,
// and logs what it finds.
func inspect(m *mesh.Mesh, log *logger.ZapLogger) *summary {
	s := &summary{}
	s.add("vertices", m.NVertices())
	s.add("triangles", m.NTriangles())
	s.add("edges", m.NEdges())
	s.add("full edges", m.NFulledges())
	s.add("boundary edges", m.NBoundaryEdges())

	built := m.Diagnostics()
	s.add("repaired windings", built.Count(mesh.ChiralityRepaired))
	s.add("over-determined", built.Count(mesh.OverDetermined))

	checks := []struct {
		name string
		run  func() mesh.Report
	}{
		{"verify", m.VerifyMesh},
		{"chirality", m.TestChiralConsistency},
		{"contiguity", m.TestContiguous},
	}
	for _, c := range checks {
		r := c.run()
		r.Log(log.Zap().Named(c.name))
		s.add(c.name+" findings", len(r))
		if err := r.Err(); err != nil {
			log.Warn("[inspect] "+c.name+" failed", zap.Error(err))
		}
	}
	s.add("regions", len(m.ContiguousRegions()))

	out := m.NewLaplacianTriplets()
	for _, w := range []mesh.WeightType{mesh.Combinatorial, mesh.Distance} {
		if err := m.Laplacian(w, out); err != nil {
			log.Error("[inspect] laplacian", zap.Stringer("weight", w), zap.Error(err))
			continue
		}
		log.Info("[inspect] laplacian",
			zap.Stringer("weight", w),
			zap.Int("triplets", out.Len()),
			zap.Float64("max row sum", maxAbs(out.RowSums())),
		)
	}

	cotans, err := m.CornerCotangents()
	if err == nil {
		err = m.CotangentLaplacian(cotans, out)
	}
	if err != nil {
		log.Error("[inspect] cotangent laplacian", zap.Error(err))
	} else {
		log.Info("[inspect] cotangent laplacian",
			zap.Int("triplets", out.Len()),
			zap.Float64("max row sum", maxAbs(out.RowSums())),
		)
	}
	s.add("laplacian triplets", m.LaplacianLen())
	return s
}

func maxAbs(xs []float64) float64 {
	m := 0.0
	for _, x := range xs {
		m = math.Max(m, math.Abs(x))
	}
	return m
}

func prepareScatter(scatter *charts.Scatter, title string) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                title,
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "x",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "y",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// meshToEcharts projects the mesh onto the xy plane. Vertices are sized by
// their lumped area; full and boundary edges are drawn as separate series.
func meshToEcharts(m *mesh.Mesh, title string) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter, title)

	pts := m.Points()
	if pts == nil {
		return scatter
	}
	areas, err := m.VertexAreas()
	if err != nil {
		areas = make([]float64, m.NVertices())
	}
	largest := maxAbs(areas)

	data := make([]opts.ScatterData, 0, m.NVertices())
	for v := range m.NVertices() {
		size := 4
		if largest > 0 {
			size += int(8 * areas[v] / largest)
		}
		data = append(data, opts.ScatterData{
			Value:      []float64{pts[3*v], pts[3*v+1]},
			SymbolSize: size,
		})
	}
	scatter.AddSeries("Vertices", data).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	for e := range min(m.NEdges(), maxDrawnEdges) {
		id := mesh.EdgeID(e)
		a, b := m.EdgeEndpoints(id)
		name, color := "Full edges", "#7aa6da"
		if !m.Edge(id).IsFull() {
			name, color = "Boundary edges", "orange"
		}

		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
		)
		line.AddSeries(name, []opts.LineData{
			{Value: []float64{pts[3*a], pts[3*a+1]}},
			{Value: []float64{pts[3*b], pts[3*b+1]}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 1,
				Color: color,
			}),
		)

		scatter.Overlap(line)
	}

	return scatter
}

// meshHandler serves the page with the form, the chart, the summary table
// and the build logs.
func (s *server) meshHandler(w http.ResponseWriter, r *http.Request) {
	p := parseParams(r)

	log := logger.New(logger.WithTee(os.Stdout))
	defer log.ClearLogs()

	log.Info("[inspect] request",
		zap.String("source", p.Source),
		zap.Int("rows", p.Rows),
		zap.Int("cols", p.Cols),
		zap.Int("scramble", p.Scramble),
		zap.Int64("seed", p.Seed),
	)

	fmt.Fprintln(w, static.Part1)

	indices, points, err := s.source(p)
	var m *mesh.Mesh
	if err == nil {
		m, err = mesh.New(indices, len(points)/3, mesh.WithPoints(points), mesh.WithLogger(log.Zap()))
	}
	if err != nil {
		log.Error("[inspect] cannot build mesh", zap.Error(err))
	} else {
		sum := inspect(m, log)
		fmt.Fprintln(w, sum.html())

		scatter := meshToEcharts(m, "Mesh ("+p.Source+")")
		if err := scatter.Render(w); err != nil {
			log.Error("[inspect] render chart", zap.Error(err))
		}
	}

	fmt.Fprintln(w, static.Part2)

	fmt.Fprintln(w, log.HTML())

	fmt.Fprintln(w, static.Part3)
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	model := flag.String("model", "", "glTF model offered as the \"model\" source")
	flag.Parse()

	s := &server{modelPath: *model}
	http.HandleFunc("/", s.meshHandler)
	fmt.Println("Server started on http://localhost" + *addr)
	err := http.ListenAndServe(*addr, nil)
	if err != nil {
		fmt.Println("Err ListenAndServe", err)
		os.Exit(1)
	}
}
