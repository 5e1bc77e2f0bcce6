package main

// webUIHTML is the single-page web interface, served from memory so the
// binary stays self-contained.
const webUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Charity Forecast</title>
    <style>
        :root {
            --primary: #2563eb;
            --primary-dark: #1d4ed8;
            --success: #16a34a;
            --warning: #ea580c;
            --bg: #f1f5f9;
            --card-bg: #ffffff;
            --text: #1e293b;
            --text-muted: #64748b;
            --border: #e2e8f0;
        }
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: var(--bg);
            color: var(--text);
            line-height: 1.6;
        }
        .header {
            background: linear-gradient(135deg, var(--primary) 0%, var(--primary-dark) 100%);
            color: white;
            padding: 1.5rem 2rem;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .header h1 { font-size: 1.5rem; font-weight: 600; }
        .header p { opacity: 0.9; font-size: 0.875rem; }
        .container {
            display: flex;
            height: calc(100vh - 80px);
            overflow: hidden;
        }
        .config-panel {
            width: 340px;
            min-width: 340px;
            background: var(--card-bg);
            border-right: 1px solid var(--border);
            overflow-y: auto;
            padding: 1rem;
        }
        .results-panel {
            flex: 1;
            overflow-y: auto;
            padding: 1rem;
        }
        .card {
            background: var(--card-bg);
            border-radius: 8px;
            box-shadow: 0 1px 3px rgba(0,0,0,0.1);
            padding: 1rem;
            margin-bottom: 0.75rem;
        }
        .card h2 {
            font-size: 0.85rem;
            font-weight: 600;
            margin-bottom: 0.5rem;
            color: var(--primary);
        }
        .form-group { margin-bottom: 0.6rem; }
        .form-group label {
            display: block;
            font-size: 0.7rem;
            font-weight: 500;
            color: var(--text-muted);
            margin-bottom: 0.15rem;
            text-transform: uppercase;
            letter-spacing: 0.3px;
        }
        .form-group input, .form-group select {
            width: 100%;
            padding: 0.4rem 0.5rem;
            border: 1px solid var(--border);
            border-radius: 4px;
            font-size: 0.8rem;
        }
        .form-group input:focus, .form-group select:focus {
            outline: none;
            border-color: var(--primary);
            box-shadow: 0 0 0 3px rgba(37, 99, 235, 0.1);
        }
        .btn {
            display: block;
            width: 100%;
            padding: 0.6rem;
            margin-bottom: 0.5rem;
            background: var(--primary);
            color: white;
            border: none;
            border-radius: 6px;
            font-size: 0.85rem;
            font-weight: 600;
            cursor: pointer;
        }
        .btn:hover { background: var(--primary-dark); }
        .btn.secondary { background: var(--text-muted); }
        table {
            width: 100%;
            border-collapse: collapse;
            font-size: 0.8rem;
        }
        th, td {
            text-align: right;
            padding: 0.4rem 0.6rem;
            border-bottom: 1px solid var(--border);
        }
        th:first-child, td:first-child { text-align: left; }
        th {
            color: var(--text-muted);
            font-weight: 600;
            text-transform: uppercase;
            font-size: 0.7rem;
            letter-spacing: 0.3px;
        }
        tr.best td { color: var(--success); font-weight: 600; }
        .error {
            background: #fef2f2;
            color: #b91c1c;
            border: 1px solid #fecaca;
            border-radius: 6px;
            padding: 0.6rem;
            font-size: 0.8rem;
            margin-bottom: 0.75rem;
        }
        .muted { color: var(--text-muted); font-size: 0.75rem; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Charity Forecast</h1>
        <p>Cost-effectiveness of a grant, as a multiple of unconditional cash transfers</p>
    </div>
    <div class="container">
        <div class="config-panel">
            <div class="card">
                <h2>Grant</h2>
                <div class="form-group">
                    <label>Grant Size (USD)</label>
                    <input type="number" id="grantSize" value="1000000" min="1000" step="10000">
                </div>
                <div class="form-group">
                    <label>Charity</label>
                    <select id="charity"><option value="">All charities</option></select>
                </div>
                <div class="form-group">
                    <label>Location</label>
                    <select id="location"><option value="">Default</option></select>
                </div>
            </div>
            <div class="card">
                <h2>Moral Weights</h2>
                <div class="form-group">
                    <label>Preset</label>
                    <select id="preset"></select>
                </div>
            </div>
            <div class="card">
                <h2>Uncertainty</h2>
                <div class="form-group">
                    <label>Monte Carlo Trials</label>
                    <input type="number" id="trials" value="10000" min="100" step="1000">
                </div>
                <div class="form-group">
                    <label>Sweep Parameter</label>
                    <select id="sweepParam">
                        <option value="under5_weight">Under-5 Moral Weight</option>
                        <option value="age_5_14_weight">Age 5-14 Moral Weight</option>
                        <option value="age_15_49_weight">Age 15-49 Moral Weight</option>
                        <option value="age_50_74_weight">Age 50-74 Moral Weight</option>
                        <option value="discount_rate">Discount Rate</option>
                    </select>
                </div>
            </div>
            <button class="btn" onclick="calculate()">Calculate</button>
            <button class="btn secondary" onclick="monteCarlo()">Run Monte Carlo</button>
            <button class="btn secondary" onclick="sweep()">Run Sensitivity Sweep</button>
        </div>
        <div class="results-panel" id="results">
            <div class="card"><p class="muted">Pick a grant size and press Calculate.</p></div>
        </div>
    </div>
    <script>
        let locationsByCharity = {};

        function fmtX(v) { return v.toFixed(1) + 'x'; }
        function fmtCount(v) {
            if (v >= 1e6) return (v / 1e6).toFixed(2) + 'M';
            if (v >= 1e3) return (v / 1e3).toFixed(1) + 'k';
            return v.toFixed(1);
        }
        function fmtMoney(v) {
            if (!isFinite(v)) return '—';
            if (v >= 1e6) return '$' + (v / 1e6).toFixed(2) + 'M';
            if (v >= 1e3) return '$' + (v / 1e3).toFixed(0) + 'k';
            return '$' + v.toFixed(2);
        }
        function showError(msg) {
            document.getElementById('results').innerHTML =
                '<div class="error">' + msg + '</div>';
        }
        function commonBody() {
            return {
                grant_size: parseFloat(document.getElementById('grantSize').value) || 0,
                preset: document.getElementById('preset').value
            };
        }

        async function init() {
            const [charities, locations, presets] = await Promise.all([
                fetch('/api/charities').then(r => r.json()),
                fetch('/api/locations').then(r => r.json()),
                fetch('/api/presets').then(r => r.json())
            ]);
            locationsByCharity = locations;
            const charitySel = document.getElementById('charity');
            charities.forEach(c => {
                const opt = document.createElement('option');
                opt.value = c.id;
                opt.textContent = c.name;
                charitySel.appendChild(opt);
            });
            charitySel.addEventListener('change', refreshLocations);
            const presetSel = document.getElementById('preset');
            presets.forEach(p => {
                const opt = document.createElement('option');
                opt.value = p.id;
                opt.textContent = p.name;
                presetSel.appendChild(opt);
            });
        }

        function refreshLocations() {
            const charity = document.getElementById('charity').value;
            const sel = document.getElementById('location');
            sel.innerHTML = '<option value="">Default</option>';
            (locationsByCharity[charity] || []).forEach(loc => {
                const opt = document.createElement('option');
                opt.value = loc.id;
                opt.textContent = loc.name;
                sel.appendChild(opt);
            });
        }

        async function calculate() {
            const body = commonBody();
            body.charity = document.getElementById('charity').value;
            body.location = document.getElementById('location').value;
            const resp = await fetch('/api/calculate', {
                method: 'POST',
                headers: {'Content-Type': 'application/json'},
                body: JSON.stringify(body)
            }).then(r => r.json());
            if (!resp.success) { showError(resp.error); return; }

            let bestIdx = -1;
            resp.results.forEach((r, i) => {
                if (bestIdx < 0 || r.results.final_x_benchmark > resp.results[bestIdx].results.final_x_benchmark) bestIdx = i;
            });
            let html = '<div class="card"><h2>Results</h2><table><tr>' +
                '<th>Charity</th><th>Location</th><th>Reached</th><th>Deaths Averted</th>' +
                '<th>Cost / Death</th><th>Initial</th><th>Final</th></tr>';
            resp.results.forEach((r, i) => {
                const u = r.results;
                const cpd = u.cost_per_death_averted;
                html += '<tr' + (i === bestIdx && resp.results.length > 1 ? ' class="best"' : '') + '>' +
                    '<td>' + r.name + '</td><td>' + r.location + '</td>' +
                    '<td>' + fmtCount(u.people_reached) + '</td>' +
                    '<td>' + fmtCount(u.deaths_averted_under5) + '</td>' +
                    '<td>' + (typeof cpd === 'number' ? fmtMoney(cpd) : '—') + '</td>' +
                    '<td>' + fmtX(u.initial_x_benchmark) + '</td>' +
                    '<td>' + fmtX(u.final_x_benchmark) + '</td></tr>';
            });
            html += '</table><p class="muted">Multiples are relative to giving the same grant as unconditional cash.</p></div>';
            document.getElementById('results').innerHTML = html;
        }

        async function monteCarlo() {
            const charity = document.getElementById('charity').value;
            if (!charity) { showError('Pick a single charity for Monte Carlo.'); return; }
            const body = commonBody();
            body.charity = charity;
            body.location = document.getElementById('location').value;
            body.trials = parseInt(document.getElementById('trials').value) || 10000;
            const resp = await fetch('/api/montecarlo', {
                method: 'POST',
                headers: {'Content-Type': 'application/json'},
                body: JSON.stringify(body)
            }).then(r => r.json());
            if (!resp.success) { showError(resp.error); return; }
            const s = resp.results;
            document.getElementById('results').innerHTML =
                '<div class="card"><h2>Monte Carlo — ' + resp.charity + ' (' + resp.location + ')</h2>' +
                '<table><tr><th>Trials</th><th>Retained</th><th>Mean</th><th>Median</th><th>StdDev</th>' +
                '<th>P5</th><th>P25</th><th>P75</th><th>P95</th></tr><tr>' +
                '<td>' + s.num_simulations + '</td><td>' + s.samples_retained + '</td>' +
                '<td>' + fmtX(s.mean) + '</td><td>' + fmtX(s.median) + '</td><td>' + s.std_dev.toFixed(2) + '</td>' +
                '<td>' + fmtX(s.p5) + '</td><td>' + fmtX(s.p25) + '</td>' +
                '<td>' + fmtX(s.p75) + '</td><td>' + fmtX(s.p95) + '</td></tr></table>' +
                '<p class="muted">80% interval: ' + fmtX(s.p10) + ' to ' + fmtX(s.p90) + '</p></div>';
        }

        async function sweep() {
            const body = commonBody();
            body.parameter = document.getElementById('sweepParam').value;
            body.points = 11;
            const resp = await fetch('/api/sweep', {
                method: 'POST',
                headers: {'Content-Type': 'application/json'},
                body: JSON.stringify(body)
            }).then(r => r.json());
            if (!resp.success) { showError(resp.error); return; }
            const charityIDs = Object.keys(resp.points[0].multiples);
            let html = '<div class="card"><h2>Sensitivity — ' + resp.label + '</h2><table><tr><th>Value</th>';
            charityIDs.forEach(id => { html += '<th>' + id + '</th>'; });
            html += '</tr>';
            resp.points.forEach(p => {
                const v = body.parameter === 'discount_rate' ? (p.value * 100).toFixed(1) + '%' : p.value.toFixed(1);
                html += '<tr><td>' + v + '</td>';
                charityIDs.forEach(id => { html += '<td>' + fmtX(p.multiples[id]) + '</td>'; });
                html += '</tr>';
            });
            html += '</table><p class="muted">Best multiple across each charity’s locations at every point.</p></div>';
            document.getElementById('results').innerHTML = html;
        }

        init();
    </script>
</body>
</html>
`
