package report

// htmlTemplate is the main HTML template for the report
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - Benchmark Report</title>
    <script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
    <style>
        :root {
            --bg-primary: #ffffff;
            --bg-secondary: #f8fafc;
            --bg-card: #ffffff;
            --text-primary: #1e293b;
            --text-secondary: #64748b;
            --text-muted: #94a3b8;
            --border-color: #e2e8f0;
            --accent-primary: #3b82f6;
            --accent-success: #22c55e;
            --accent-warning: #f59e0b;
            --accent-error: #ef4444;
            --shadow: 0 1px 3px rgba(0, 0, 0, 0.1);
        }

        [data-theme="dark"] {
            --bg-primary: #0f172a;
            --bg-secondary: #1e293b;
            --bg-card: #1e293b;
            --text-primary: #f1f5f9;
            --text-secondary: #94a3b8;
            --text-muted: #64748b;
            --border-color: #334155;
            --shadow: 0 1px 3px rgba(0, 0, 0, 0.3);
        }

        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background-color: var(--bg-secondary);
            color: var(--text-primary);
            line-height: 1.6;
            min-height: 100vh;
        }

        .container {
            max-width: 1400px;
            margin: 0 auto;
            padding: 2rem;
        }

        /* Header */
        .header {
            background: var(--bg-card);
            border-radius: 12px;
            padding: 2rem;
            margin-bottom: 2rem;
            box-shadow: var(--shadow);
            display: flex;
            justify-content: space-between;
            align-items: center;
            flex-wrap: wrap;
            gap: 1rem;
        }

        .header-left h1 {
            font-size: 1.75rem;
            font-weight: 700;
            margin-bottom: 0.5rem;
        }

        .header-left .meta, .section .meta {
            display: flex;
            gap: 2rem;
            margin-top: 0.5rem;
            font-size: 0.875rem;
            color: var(--text-muted);
        }

        .header-right {
            display: flex;
            align-items: center;
            gap: 1rem;
        }

        .status {
            padding: 0.75rem 1.5rem;
            border-radius: 8px;
            font-weight: 600;
        }

        .status.pass {
            background-color: rgba(34, 197, 94, 0.1);
            color: var(--accent-success);
            border: 1px solid rgba(34, 197, 94, 0.2);
        }

        .status.unverified {
            background-color: rgba(245, 158, 11, 0.1);
            color: var(--accent-warning);
            border: 1px solid rgba(245, 158, 11, 0.2);
        }

        .theme-toggle {
            background: var(--bg-secondary);
            border: 1px solid var(--border-color);
            border-radius: 8px;
            padding: 0.5rem;
            cursor: pointer;
            color: var(--text-secondary);
            font-size: 1.25rem;
        }

        /* Sections */
        .section {
            background: var(--bg-card);
            border-radius: 12px;
            padding: 1.5rem;
            margin-bottom: 2rem;
            box-shadow: var(--shadow);
        }

        .section-title {
            font-size: 1.25rem;
            font-weight: 600;
        }

        .stats-table {
            width: 100%;
            border-collapse: collapse;
            margin-top: 1rem;
            font-size: 0.875rem;
        }

        .stats-table th, .stats-table td {
            padding: 0.6rem 0.75rem;
            text-align: right;
            border-bottom: 1px solid var(--border-color);
        }

        .stats-table th:first-child, .stats-table td:first-child,
        .stats-table th:nth-child(2), .stats-table td:nth-child(2) {
            text-align: left;
        }

        .stats-table th {
            color: var(--text-secondary);
            font-weight: 600;
        }

        .agree { color: var(--accent-success); }
        .disagree { color: var(--accent-error); }
        .indeterminate { color: var(--text-muted); }

        .chart-container {
            position: relative;
            height: 260px;
            margin-top: 1.5rem;
        }

        .footer {
            text-align: center;
            color: var(--text-muted);
            font-size: 0.8rem;
        }
    </style>
</head>
<body>
    <div class="container">
        <header class="header">
            <div class="header-left">
                <h1>{{.Title}}</h1>
                <div class="meta">
                    <span>{{.GeneratedAt.Format "2006-01-02 15:04:05"}}</span>
                    <span>{{len .Summaries}} run(s)</span>
                </div>
            </div>
            <div class="header-right">
                <div class="status {{if allVerified .Summaries}}pass{{else}}unverified{{end}}">
                    {{if allVerified .Summaries}}OUTPUTS AGREE{{else}}NOT VERIFIED{{end}}
                </div>
                <button class="theme-toggle" onclick="toggleTheme()" title="Toggle dark mode">&#9790;</button>
            </div>
        </header>

        {{range $i, $s := .Summaries}}
        <section class="section">
            <h2 class="section-title">{{$s.Tag}}</h2>
            <div class="meta">
                <span>kind {{$s.Kind}}</span>
                <span>size {{$s.Size}}</span>
                <span>seed {{$s.Seed}}</span>
                <span>repeat {{$s.Repeat}}</span>
                <span>{{formatElapsed $s.Duration}}</span>
                <span>run {{$s.RunID}}</span>
            </div>
            {{if $s.Measurements}}
            <table class="stats-table">
                <thead>
                    <tr>
                        <th>Variant</th>
                        <th>Complexity</th>
                        <th>Mean</th>
                        <th>P50</th>
                        <th>P99</th>
                        <th>Std Dev</th>
                        <th>{{if $s.MetricName}}{{$s.MetricName}}{{else}}Metric{{end}}</th>
                        <th>Allocs</th>
                        <th>Bytes</th>
                        <th>Speedup</th>
                        <th>Output</th>
                    </tr>
                </thead>
                <tbody>
                    {{range $s.Measurements}}
                    <tr>
                        <td>{{.Variant}}</td>
                        <td>{{.Complexity}}</td>
                        <td>{{formatElapsed .Elapsed}}</td>
                        <td>{{formatElapsed .Timing.P50}}</td>
                        <td>{{formatElapsed .Timing.P99}}</td>
                        <td>{{formatElapsed .Timing.StdDev}}</td>
                        <td>{{formatMetric .Metric}}</td>
                        <td>{{formatCount .Allocs}}</td>
                        <td>{{formatBytes .AllocBytes}}</td>
                        <td>{{speedupOf $s .Variant}}</td>
                        <td>{{if .Agrees}}{{if deref .Agrees}}<span class="agree">agrees</span>{{else}}<span class="disagree">differs</span>{{end}}{{else}}<span class="indeterminate">-</span>{{end}}</td>
                    </tr>
                    {{end}}
                </tbody>
            </table>
            <div class="chart-container">
                <canvas id="{{chartID $i}}"></canvas>
            </div>
            {{else}}
            <p class="meta">No variants were run.</p>
            {{end}}
        </section>
        {{end}}

        <footer class="footer">Generated by bigo</footer>
    </div>

    <script>
        // Theme toggle
        function toggleTheme() {
            const html = document.documentElement;
            const newTheme = html.getAttribute('data-theme') === 'dark' ? 'light' : 'dark';
            html.setAttribute('data-theme', newTheme);
            localStorage.setItem('theme', newTheme);
        }

        const savedTheme = localStorage.getItem('theme') || 'light';
        document.documentElement.setAttribute('data-theme', savedTheme);

        // Per-run mean elapsed times in milliseconds
        const chartsData = {{.ChartsJSON}};

        chartsData.forEach(series => {
            const canvas = document.getElementById(series.id);
            if (!canvas || typeof Chart === 'undefined') {
                return;
            }
            new Chart(canvas.getContext('2d'), {
                type: 'bar',
                data: {
                    labels: series.labels,
                    datasets: [{
                        label: 'Mean elapsed (ms)',
                        data: series.elapsedMs,
                        backgroundColor: '#3b82f6',
                    }],
                },
                options: {
                    responsive: true,
                    maintainAspectRatio: false,
                    indexAxis: 'y',
                    scales: { x: { type: 'logarithmic' } },
                },
            });
        });
    </script>
</body>
</html>
`
